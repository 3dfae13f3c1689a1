// Package levels loads Streamline levels from files and directories and
// sequences them into a playlist. It depends on core but core does not
// depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/streamline/internal/games/streamline/core"
	"github.com/vovakirdan/streamline/internal/games/streamline/levels/formats"
)

// ErrNoLevels is returned when a path yields no playable level.
var ErrNoLevels = errors.New("levels: no playable levels")

// Level is a loaded level definition. Board is a template and is never
// played directly.
type Level struct {
	ID       string
	Name     string
	Board    *core.Board
	Metadata map[string]string
	FilePath string
}

// NewSession starts a session on a fresh copy of the level's board.
func (l *Level) NewSession() *core.Session {
	return core.NewSessionFromBoard(l.Board.Clone())
}

// Title returns the display name, falling back to the ID.
func (l *Level) Title() string {
	if l.Name != "" {
		return l.Name
	}
	return l.ID
}

// Loader handles loading levels from a file or a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
	Rand   *rand.Rand // used for random_obstacles
}

// NewLoader creates a loader that logs nowhere and scatters obstacles with a
// time-seeded generator.
func NewLoader(root string) *Loader {
	return &Loader{
		Root:   root,
		Logger: log.New(io.Discard),
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// LoadAll loads the level at Root if it is a file, or every level file
// directly inside Root if it is a directory, sorted by file name. Files that
// fail to parse are skipped with a warning.
func (l *Loader) LoadAll() ([]Level, error) {
	info, err := os.Stat(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}

	if !info.IsDir() {
		lvl, err := l.LoadFile(l.Root)
		if err != nil {
			return nil, err
		}
		return []Level{lvl}, nil
	}

	entries, err := os.ReadDir(l.Root)
	if err != nil {
		return nil, fmt.Errorf("levels: reading directory %s: %w", l.Root, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var levels []Level
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(l.Root, e.Name())
		if !isSupportedExtension(filepath.Ext(path)) {
			continue
		}

		lvl, err := l.LoadFile(path)
		if err != nil {
			l.Logger.Warn("skipping level file", "path", path, "err", err)
			continue
		}
		levels = append(levels, lvl)
	}

	if len(levels) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, l.Root)
	}
	l.Logger.Debug("loaded levels", "dir", l.Root, "count", len(levels))

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	parsed, err := formats.Parse(path, data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	if parsed.RandomObstacles > 0 {
		parsed.Board.ScatterObstacles(parsed.RandomObstacles, l.Rand)
	}

	id := parsed.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return Level{
		ID:       id,
		Name:     parsed.Name,
		Board:    parsed.Board,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

// ListIDs returns all level IDs in load order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
