package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-blocky/internal/core"
)

// MatchRecord is a stored match with its players.
type MatchRecord struct {
	ID        int64
	MatchID   string // UUID
	GameID    string
	Rounds    int
	Seed      int64
	WinnerID  int // 0 on a draw
	Duration  time.Duration
	CreatedAt time.Time
	Players   []core.PlayerResult
}

// KindStats aggregates results for one player kind.
type KindStats struct {
	Kind     string
	Games    int
	Wins     int
	AvgScore float64
	Best     int
}

// SaveMatchResult stores a finished match and its players in a single
// transaction. Returns the generated match ID.
func (s *Store) SaveMatchResult(result core.MatchResult) (string, error) {
	matchID := uuid.NewString()

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		`INSERT INTO matches (match_id, game_id, rounds, seed, winner_id, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		matchID,
		result.GameID,
		result.Rounds,
		result.Seed,
		result.WinnerID,
		result.Duration.Milliseconds(),
	); err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}

	for _, p := range result.Players {
		if _, err := tx.Exec(
			`INSERT INTO match_players (match_id, player_id, kind, goal, color, score)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			matchID, p.PlayerID, p.Kind, p.Goal, p.Color, p.Score,
		); err != nil {
			return "", fmt.Errorf("storage: cannot save match player %d: %w", p.PlayerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return matchID, nil
}

const matchColumns = `id, match_id, game_id, rounds, seed, winner_id, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var m MatchRecord
	var durationMS int64
	var createdAt any
	err := row.Scan(&m.ID, &m.MatchID, &m.GameID, &m.Rounds, &m.Seed, &m.WinnerID, &durationMS, &createdAt)
	if err != nil {
		return m, err
	}
	m.Duration = time.Duration(durationMS) * time.Millisecond
	m.CreatedAt = parseTime(createdAt)
	return m, nil
}

// MatchByID retrieves a match by its match ID.
// Returns nil, nil if no such match exists.
func (s *Store) MatchByID(matchID string) (*MatchRecord, error) {
	m, err := scanMatch(s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	if m.Players, err = s.matchPlayers(m.MatchID); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecentMatches retrieves the most recent matches, newest first.
// An empty gameID returns matches of every variant.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}

	var matches []MatchRecord
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	rows.Close()

	for i := range matches {
		if matches[i].Players, err = s.matchPlayers(matches[i].MatchID); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

func (s *Store) matchPlayers(matchID string) ([]core.PlayerResult, error) {
	rows, err := s.db.Query(
		`SELECT player_id, kind, goal, color, score
		 FROM match_players
		 WHERE match_id = ?
		 ORDER BY player_id`,
		matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match players: %w", err)
	}
	defer rows.Close()

	var players []core.PlayerResult
	for rows.Next() {
		var p core.PlayerResult
		if err := rows.Scan(&p.PlayerID, &p.Kind, &p.Goal, &p.Color, &p.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player row: %w", err)
		}
		players = append(players, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

// PlayerKindStats aggregates stored matches by player kind. An empty
// gameID covers every variant. Results are ordered by kind.
func (s *Store) PlayerKindStats(gameID string) ([]KindStats, error) {
	rows, err := s.db.Query(
		`SELECT p.kind,
		        COUNT(*),
		        COALESCE(SUM(CASE WHEN m.winner_id = p.player_id THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(p.score), 0),
		        COALESCE(MAX(p.score), 0)
		 FROM match_players p
		 JOIN matches m ON m.match_id = p.match_id
		 WHERE ? = '' OR m.game_id = ?
		 GROUP BY p.kind
		 ORDER BY p.kind`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query kind stats: %w", err)
	}
	defer rows.Close()

	var stats []KindStats
	for rows.Next() {
		var k KindStats
		if err := rows.Scan(&k.Kind, &k.Games, &k.Wins, &k.AvgScore, &k.Best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
