// Package report is a thin external adapter that renders a completed
// run's metrics. The default "text" format is the mandated
// human-readable table (sim.Metrics.Print); "json" and "yaml" are
// enrichments for machine consumption, selected via --format.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/emreebayir/cpu-scheduling-simulator/sim"
)

// ValidFormats is the set of recognized --format values.
var ValidFormats = map[string]bool{"": true, "text": true, "json": true, "yaml": true}

// IsValidFormat reports whether name is a recognized format.
func IsValidFormat(name string) bool { return ValidFormats[name] }

// Render writes m to w in the given format ("" and "text" both mean the
// mandated table). Panics on an unrecognized format, since the CLI
// validates --format before Render is ever called.
func Render(format string, w io.Writer, m *sim.Metrics, showPercentiles bool) error {
	switch format {
	case "", "text":
		m.Print(w)
		if showPercentiles {
			m.PrintPercentiles(w)
		}
		return nil
	case "json":
		return renderJSON(w, m)
	case "yaml":
		return renderYAML(w, m)
	default:
		panic(fmt.Sprintf("unhandled report format %q", format))
	}
}

func renderJSON(w io.Writer, m *sim.Metrics) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func renderYAML(w io.Writer, m *sim.Metrics) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(m)
}
