// Package blocky implements the Blocky game variants: players take turns
// rotating, swapping and smashing blocks of a quadtree board, each trying
// to maximise their own goal score for a secret target colour.
package blocky

import (
	"fmt"
	"math/rand"
	"time"

	blk "github.com/vovakirdan/tui-blocky/internal/blocky"
	"github.com/vovakirdan/tui-blocky/internal/config"
	"github.com/vovakirdan/tui-blocky/internal/core"
	"github.com/vovakirdan/tui-blocky/internal/registry"
)

// Variant is a registered player lineup.
type Variant struct {
	ID    string
	Title string
}

// Variants lists every registered variant.
var Variants = []Variant{
	{ID: config.VariantSolo, Title: "Blocky"},
	{ID: config.VariantDuel, Title: "Blocky Duel"},
	{ID: config.VariantWatch, Title: "Blocky CPU Showdown"},
}

// seat is one player in the match.
type seat struct {
	player blk.Player
	human  *blk.HumanPlayer // nil for computer players
	cpu    blk.Computer     // nil for humans
	color  string           // palette name of the target colour
	score  int
}

func (s *seat) label() string {
	if s.human != nil {
		return fmt.Sprintf("P%d", s.player.ID())
	}
	return fmt.Sprintf("CPU%d", s.player.ID())
}

// Game implements a Blocky match.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.BlockyConfig

	rng     *rand.Rand
	gen     *blk.Generator
	palette blk.Palette
	board   *blk.Block
	goal    blk.GoalKind
	seats   []*seat

	layout  layout
	pointer blk.Point // board pixel under the cursor

	current  int // seat index whose turn it is
	round    int // 1-based
	cpuMove  *blk.Move
	cpuWait  int
	status   string
	tick     int
	gameOver bool
	paused   bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// Overrides from CLI flags. Zero means "use the config".
var (
	depthOverride  int
	roundsOverride int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetOverrides sets board depth and round count overrides.
func SetOverrides(depth, rounds int) {
	depthOverride = depth
	roundsOverride = rounds
}

// New creates a game for the given variant id.
func New(variantID string) *Game {
	for _, v := range Variants {
		if v.ID == variantID {
			return &Game{variant: v}
		}
	}
	return &Game{variant: Variant{ID: variantID, Title: variantID}}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.variant.Title
}

// loadConfig resolves the configuration for a new match.
func loadConfig() config.BlockyConfig {
	cfg, err := config.LoadBlocky(configPath)
	if err != nil {
		cfg = config.DefaultBlockyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockyPreset(&cfg, difficultyPreset)
	}
	if depthOverride >= config.MinDepth && depthOverride <= config.MaxDepth {
		cfg.Board.MaxDepth = depthOverride
	}
	if roundsOverride > 0 {
		cfg.Game.Rounds = roundsOverride
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.ResetWithConfig(runtime, loadConfig())
}

// ResetWithConfig starts a match using an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BlockyConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	palette, err := cfg.BlockyPalette()
	if err != nil {
		palette = blk.DefaultPalette()
	}
	g.palette = palette
	g.gen = blk.NewGenerator(g.rng, palette).WithDecay(cfg.Board.SubdivideDecay)

	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH, cfg.Board.MaxDepth, cfg.Board.Size)
	g.board = g.gen.Board(cfg.Board.MaxDepth, g.layout.size)
	g.goal = g.pickGoalKind()
	g.seats = g.makeSeats()

	g.pointer = blk.Pt(g.layout.size/2, g.layout.size/2)
	g.current = 0
	g.round = 1
	g.cpuMove = nil
	g.cpuWait = 0
	g.tick = 0
	g.gameOver = false
	g.paused = false
	g.status = ""

	g.refreshScores()
	g.startTurn()
}

func (g *Game) pickGoalKind() blk.GoalKind {
	switch g.cfg.Game.Goal {
	case config.GoalBlob:
		return blk.GoalBlob
	case config.GoalPerimeter:
		return blk.GoalPerimeter
	default:
		return blk.GoalKind(g.rng.Intn(2))
	}
}

// makeSeats builds the lineup, giving every player a distinct colour.
func (g *Game) makeSeats() []*seat {
	lineup := g.cfg.Lineup(g.variant.ID)
	if len(lineup) == 0 {
		lineup = config.DefaultBlockyConfig().Lineup(config.VariantSolo)
	}
	if len(lineup) > len(g.palette) {
		lineup = lineup[:len(g.palette)]
	}

	order := g.rng.Perm(len(g.palette))
	seats := make([]*seat, 0, len(lineup))
	for i, pc := range lineup {
		id := i + 1
		entry := g.palette[order[i]]
		goal := blk.NewGoal(g.goal, entry.Color)
		s := &seat{color: entry.Name}

		kind, err := blk.ParsePlayerKind(pc.Kind)
		if err != nil {
			kind = blk.KindHuman
		}
		switch kind {
		case blk.KindHuman:
			s.human = blk.NewHumanPlayer(id, goal, g.cfg.Game.MaxSmashes)
			s.player = s.human
		case blk.KindSmart:
			smart := blk.NewSmartPlayer(id, goal, pc.Difficulty).WithMoveTable(g.cfg.Smart.MovesByDifficulty)
			s.cpu = smart
			s.player = smart
		default:
			s.cpu = blk.NewRandomPlayer(id, goal)
			s.player = s.cpu
		}
		seats = append(seats, s)
	}
	return seats
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++

	s := g.seats[g.current]
	if s.human != nil {
		g.stepHuman(s, in)
	} else {
		g.stepComputer(s)
	}

	return core.StepResult{State: g.State()}
}

// actionMoves maps move actions to the move they request.
var actionMoves = []struct {
	action core.Action
	kind   blk.MoveKind
}{
	{core.ActionRotateCW, blk.MoveRotateClockwise},
	{core.ActionRotateCCW, blk.MoveRotateCounterClockwise},
	{core.ActionSwapHorizontal, blk.MoveSwapHorizontal},
	{core.ActionSwapVertical, blk.MoveSwapVertical},
	{core.ActionSmash, blk.MoveSmash},
}

func (g *Game) stepHuman(s *seat, in core.InputFrame) {
	g.movePointer(in)

	if in.Has(core.ActionLevelUp) {
		s.human.LevelUp()
	}
	if in.Has(core.ActionLevelDown) {
		s.human.LevelDown()
	}
	s.human.Select(g.board, g.pointer)

	for _, am := range actionMoves {
		if !in.Has(am.action) {
			continue
		}
		res, err := s.human.Act(am.kind, g.gen)
		switch res {
		case blk.MoveApplied:
			g.status = fmt.Sprintf("%s: %s", s.label(), am.kind)
			g.endTurn()
		case blk.MoveRejected:
			if err != nil {
				g.status = fmt.Sprintf("%s: %v", s.label(), err)
			} else {
				g.status = fmt.Sprintf("%s: cannot %s here", s.label(), am.kind)
			}
		}
		return
	}
}

// movePointer applies mouse and arrow-key input to the board pointer.
func (g *Game) movePointer(in core.InputFrame) {
	if in.Pointer != nil {
		if p, ok := g.layout.toBoard(in.Pointer.X, in.Pointer.Y); ok {
			g.pointer = p
		}
	}

	step := g.layout.unit
	switch {
	case in.Has(core.ActionUp):
		g.pointer.Y -= step
	case in.Has(core.ActionDown):
		g.pointer.Y += step
	}
	switch {
	case in.Has(core.ActionLeft):
		g.pointer.X -= step
	case in.Has(core.ActionRight):
		g.pointer.X += step
	}
	g.pointer.X = core.Clamp(g.pointer.X, 0, g.layout.size-1)
	g.pointer.Y = core.Clamp(g.pointer.Y, 0, g.layout.size-1)
}

// stepComputer picks a move on the first tick of the turn, shows it
// highlighted for CPUDelayTicks, then applies it.
func (g *Game) stepComputer(s *seat) {
	if g.cpuMove == nil {
		m := s.cpu.ChooseMove(g.board, g.rng)
		g.cpuMove = &m
		g.cpuWait = g.cfg.Game.CPUDelayTicks
		m.Target.Highlighted = true
	}

	if g.cpuWait > 0 {
		g.cpuWait--
		return
	}

	m := g.cpuMove
	m.Target.Highlighted = false
	if m.Apply(g.gen) {
		g.status = fmt.Sprintf("%s: %s", s.label(), m.Kind)
	} else {
		g.status = fmt.Sprintf("%s: %s failed, turn lost", s.label(), m.Kind)
	}
	g.cpuMove = nil
	g.endTurn()
}

// endTurn rescores the board and hands the turn to the next player.
func (g *Game) endTurn() {
	if s := g.seats[g.current]; s.human != nil {
		s.human.Deselect()
	}
	g.refreshScores()

	g.current++
	if g.current == len(g.seats) {
		g.current = 0
		g.round++
		if g.round > g.cfg.Game.Rounds {
			g.round = g.cfg.Game.Rounds
			g.gameOver = true
			return
		}
	}
	g.startTurn()
}

func (g *Game) startTurn() {
	if s := g.seats[g.current]; s.human != nil {
		s.human.StartTurn(g.board)
	}
}

func (g *Game) refreshScores() {
	for _, s := range g.seats {
		s.score = s.player.Goal().Score(g.board)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if len(g.seats) > 0 {
		score = g.seats[0].score
	}
	return core.GameState{
		Score:    score, // Report player 1's score
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board returns the live board.
func (g *Game) Board() *blk.Block {
	return g.board
}

// MatchResult describes the match for storage.
func (g *Game) MatchResult() core.MatchResult {
	players := make([]core.PlayerResult, len(g.seats))
	for i, s := range g.seats {
		players[i] = core.PlayerResult{
			PlayerID: s.player.ID(),
			Kind:     s.player.Kind().String(),
			Goal:     g.goal.String(),
			Color:    s.color,
			Score:    s.score,
		}
	}

	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return core.MatchResult{
		GameID:   g.variant.ID,
		Rounds:   g.cfg.Game.Rounds,
		Seed:     g.runtime.Seed,
		WinnerID: core.Winner(players),
		Duration: time.Duration(g.tick) * time.Second / time.Duration(rate),
		Players:  players,
	}
}

// Ensure Game implements registry.MatchReporter
var _ registry.MatchReporter = (*Game)(nil)

// Register the variants with the registry
func init() {
	for _, v := range Variants {
		id := v.ID
		registry.Register(id, func() registry.Game {
			return New(id)
		})
	}
}
