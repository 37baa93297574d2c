package snapshot

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/tallied-dev/tallied/internal/normalize"
)

// Parser converts a snapshot export into raw transaction records. The
// records still need normalization before any aggregation sees them.
type Parser interface {
	Parse(r io.Reader) ([]normalize.RawTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&JSONParser{})
	r.Register(&CSVParser{})
	return r
}

// FormatForPath infers the snapshot format from a file extension.
// Unknown extensions default to json.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	default:
		return "json"
	}
}
