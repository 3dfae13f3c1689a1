// Package streamline runs the Streamline sliding puzzle as platform game
// modes: a campaign over loaded levels and an endless run of random boards.
package streamline

import (
	"fmt"
	"math/rand"

	platformcore "github.com/vovakirdan/streamline/internal/core"
	"github.com/vovakirdan/streamline/internal/config"
	"github.com/vovakirdan/streamline/internal/games/streamline/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
	"github.com/vovakirdan/streamline/internal/registry"
)

// Mode IDs.
const (
	ModeCampaign = "streamline"
	ModeRandom   = "streamline_random"
)

// Options configures a game.
type Options struct {
	Config config.StreamlineConfig
	Levels []levels.Level // campaign levels; empty plays a random board
}

func init() {
	registry.Register(registry.Mode{ID: ModeCampaign, Title: "Streamline", Campaign: true},
		func(s registry.Setup) registry.Game {
			return New(ModeCampaign, Options{Config: s.Config, Levels: s.Levels})
		})
	registry.Register(registry.Mode{ID: ModeRandom, Title: "Streamline (random boards)"},
		func(s registry.Setup) registry.Game {
			return New(ModeRandom, Options{Config: s.Config})
		})
}

// Game implements registry.Game for both modes.
type Game struct {
	mode       string
	opts       Options
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	tickRate   int

	playlist *levels.Playlist
	boards   int // random boards cleared this run

	clearTicks int  // remaining ticks of the cleared banner
	reported   bool // completion already returned for the current board
	gameOver   bool

	notice      string
	noticeColor platformcore.Color
	noticeTicks int

	screenW int
	screenH int
}

// New creates a game in the given mode. Call Reset before stepping.
func New(mode string, opts Options) *Game {
	return &Game{
		mode:       mode,
		opts:       opts,
		difficulty: config.NewDifficultyManager(opts.Config.Board, opts.Config.Difficulty),
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string { return g.mode }

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRandom {
		return "Streamline (random boards)"
	}
	return "Streamline"
}

func (g *Game) campaign() bool {
	return g.mode == ModeCampaign && len(g.opts.Levels) > 0
}

// Reset starts a new run.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = g.opts.Config.UI.TickRate
	}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.boards = 0
	g.clearTicks = 0
	g.gameOver = false
	g.notice = ""
	g.noticeTicks = 0

	if g.campaign() {
		g.playlist = levels.NewPlaylist(g.opts.Levels)
		g.reported = false
		return
	}
	g.newRandomBoard()
}

func (g *Game) newRandomBoard() {
	b := g.opts.Config.Board
	g.playlist = levels.NewRandomPlaylist(core.SessionOptions{
		Height:    b.Height,
		Width:     b.Width,
		Obstacles: g.difficulty.Obstacles(g.boards),
	}, g.rng)
	g.reported = false
}

// Step applies one frame of input.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if in.Has(platformcore.ActionQuit) {
		return platformcore.StepResult{State: g.State(), Quit: true}
	}

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	if g.gameOver {
		if in.Has(platformcore.ActionRestart) {
			g.Reset(platformcore.RuntimeConfig{
				Seed:     g.rng.Int63(),
				ScreenW:  g.screenW,
				ScreenH:  g.screenH,
				TickRate: g.tickRate,
			})
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Any key dismisses the cleared banner early.
	if g.clearTicks > 0 {
		g.clearTicks--
		if g.clearTicks == 0 || !in.Empty() {
			g.clearTicks = 0
			g.next()
		}
		return platformcore.StepResult{State: g.State()}
	}

	switch {
	case in.Has(platformcore.ActionRestart):
		g.playlist.Restart()
		g.reported = false
		g.setNotice("Level restarted", platformcore.ColorGray)
		return platformcore.StepResult{State: g.State()}
	case in.Has(platformcore.ActionSkip):
		g.skip()
		return platformcore.StepResult{State: g.State()}
	}

	session := g.playlist.Current()
	if in.Has(platformcore.ActionUndo) {
		session.Undo()
	}
	if in.Has(platformcore.ActionSave) {
		g.save(session)
	}
	if d := direction(in); d != core.DirNone {
		session.RecordAndMove(d)
	}

	result := platformcore.StepResult{}
	if session.Current().Completed() && !g.reported {
		g.reported = true
		result.Completed = &platformcore.Completion{
			LevelID: g.levelID(),
			Moves:   session.Moves(),
			Undos:   session.Undos(),
		}
		if g.opts.Config.UI.ClearTicks > 0 {
			g.clearTicks = g.opts.Config.UI.ClearTicks
		} else {
			g.next()
		}
	}

	result.State = g.State()
	return result
}

// direction picks the first move in a fixed order.
func direction(in platformcore.InputFrame) core.Direction {
	switch {
	case in.Has(platformcore.ActionUp):
		return core.DirUp
	case in.Has(platformcore.ActionDown):
		return core.DirDown
	case in.Has(platformcore.ActionLeft):
		return core.DirLeft
	case in.Has(platformcore.ActionRight):
		return core.DirRight
	}
	return core.DirNone
}

// next moves past a cleared board.
func (g *Game) next() {
	if g.campaign() {
		g.playlist.Advance()
		g.reported = false
		g.gameOver = g.playlist.Done()
		return
	}
	g.boards++
	g.newRandomBoard()
}

// skip abandons the current board.
func (g *Game) skip() {
	if g.campaign() {
		g.playlist.Abandon()
		g.reported = false
		g.gameOver = g.playlist.Done()
		return
	}
	g.newRandomBoard()
}

func (g *Game) save(s *core.Session) {
	path := g.opts.Config.Save.Path
	if path == "" {
		path = config.DefaultSavePath
	}
	if err := s.SaveFile(path); err != nil {
		g.setNotice(err.Error(), platformcore.ColorRed)
		return
	}
	g.setNotice("Saved to "+path, platformcore.ColorGreen)
}

func (g *Game) setNotice(msg string, c platformcore.Color) {
	g.notice = msg
	g.noticeColor = c
	g.noticeTicks = max(2*g.tickRate, 1)
}

func (g *Game) levelID() string {
	if lvl, ok := g.playlist.Level(); ok {
		return lvl.ID
	}
	return ""
}

// Session returns the live session, or nil once the run is over.
func (g *Game) Session() *core.Session {
	if g.playlist == nil {
		return nil
	}
	return g.playlist.Current()
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{GameOver: g.gameOver}
	if g.playlist == nil {
		return st
	}

	st.LevelID = g.levelID()
	if g.campaign() {
		st.Level = g.playlist.Index()
		st.Levels = g.playlist.Len()
	} else {
		st.Level = g.boards
	}
	if s := g.playlist.Current(); s != nil {
		st.Moves = s.Moves()
		st.Undos = s.Undos()
		st.Cleared = s.Current().Completed()
	}
	return st
}

// Notice returns the transient status message, if any.
func (g *Game) Notice() string { return g.notice }

func (g *Game) hud() string {
	st := g.State()
	if g.campaign() {
		lvl, _ := g.playlist.Level()
		return fmt.Sprintf(" Streamline | Level %d/%d %s | Moves: %d | Undos: %d",
			min(st.Level+1, st.Levels), st.Levels, lvl.Title(), st.Moves, st.Undos)
	}
	return fmt.Sprintf(" Streamline | Board %d | Obstacles: %d | Moves: %d | Undos: %d",
		st.Level+1, g.difficulty.Obstacles(g.boards), st.Moves, st.Undos)
}
