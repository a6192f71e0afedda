// Package report turns a day's task snapshots into exportable
// summaries. Generators are registered by name; the core imposes no
// contract on them beyond read-only access to the snapshots.
package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/blsam/trackie/internal/models"
)

// Generator writes a report for one day's task snapshots.
type Generator func(w io.Writer, day time.Time, tasks []models.Task) error

// DefaultName is the generator used when none is requested.
const DefaultName = "text"

var registry = map[string]Generator{}

// Register adds a named generator. Registering an existing name
// replaces the previous generator.
func Register(name string, g Generator) {
	registry[name] = g
}

// Get returns the generator registered under name.
func Get(name string) (Generator, bool) {
	g, ok := registry[name]
	return g, ok
}

// Names returns all registered generator names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate runs the named generator.
func Generate(name string, w io.Writer, day time.Time, tasks []models.Task) error {
	g, ok := Get(name)
	if !ok {
		return fmt.Errorf("unknown report generator: %s", name)
	}
	return g(w, day, tasks)
}

func init() {
	Register("text", Text)
	Register("csv", CSV)
}
