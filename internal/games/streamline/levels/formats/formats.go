// Package formats provides the level file parsers for Streamline.
package formats

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/streamline/internal/games/streamline/core"
)

// Level represents a parsed level ready for use.
type Level struct {
	ID              string
	Name            string
	Board           *core.Board
	RandomObstacles int // obstacles to scatter when the level is loaded
	Metadata        map[string]string
}

// ParseText parses a level stored in the text save format.
// Errors are *core.LoadError.
func ParseText(data []byte) (Level, error) {
	b, err := core.Decode(bytes.NewReader(data))
	if err != nil {
		return Level{}, err
	}
	return Level{Board: b}, nil
}

// FormatExtensions returns the supported level file extensions. The empty
// string stands for extensionless save files.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt", ""}
}

// IsYAML reports whether path has a YAML extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Parse routes to the parser for path's extension. Anything that is not YAML
// is read as the text save format, which has no fixed extension.
func Parse(path string, data []byte) (Level, error) {
	if IsYAML(path) {
		return ParseYAML(data)
	}
	return ParseText(data)
}
