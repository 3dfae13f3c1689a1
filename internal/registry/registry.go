// Package registry holds the ways Streamline can be played. Each mode
// registers a descriptor and a factory from an init() function; the CLI
// picks a mode for the loaded levels and builds it from a Setup.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/streamline/internal/config"
	"github.com/vovakirdan/streamline/internal/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels"
)

// ErrNoMode is returned by Select when no registered mode fits.
var ErrNoMode = errors.New("registry: no matching mode")

// Game is a playable run driven by the platform one input at a time.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new run. Called once at start and again on restart
	// after the run is over.
	Reset(cfg core.RuntimeConfig)

	// Step applies the actions of one key press, or an empty frame on a
	// timer tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState
}

// Setup is everything a mode needs to build a run.
type Setup struct {
	Config config.StreamlineConfig
	Levels []levels.Level
}

// Mode describes a registered way to play.
type Mode struct {
	ID    string
	Title string

	// Campaign modes play Setup.Levels in order.
	Campaign bool
}

// Factory builds a game for a setup.
type Factory func(Setup) Game

type entry struct {
	mode    Mode
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. Panics on an empty or duplicate ID.
func Register(m Mode, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if m.ID == "" {
		panic("registry: mode without an ID")
	}
	if _, exists := entries[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	entries[m.ID] = entry{mode: m, factory: f}
}

// Modes returns every registered mode sorted by ID.
func Modes() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	modes := make([]Mode, 0, len(entries))
	for _, e := range entries {
		modes = append(modes, e.mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i].ID < modes[j].ID })
	return modes
}

// Lookup returns the descriptor of a mode.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.mode, ok
}

// Select picks the mode for a setup: a campaign mode when levels are
// loaded and random play is not forced, otherwise a non-campaign mode.
// Ties go to the lowest ID.
func Select(s Setup, random bool) (Mode, error) {
	campaign := len(s.Levels) > 0 && !random
	for _, m := range Modes() {
		if m.Campaign == campaign {
			return m, nil
		}
	}
	return Mode{}, fmt.Errorf("%w (campaign=%v)", ErrNoMode, campaign)
}

// Create builds a game of the given mode. A zero Config is replaced by
// config.DefaultConfig.
func Create(id string, s Setup) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	if s.Config == (config.StreamlineConfig{}) {
		s.Config = config.DefaultConfig()
	}
	return e.factory(s), nil
}
