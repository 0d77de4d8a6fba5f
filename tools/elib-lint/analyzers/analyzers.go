// Package analyzers provides all custom static analyzers for elib.
package analyzers

import (
	"golang.org/x/tools/go/analysis"

	"github.com/drachir000/elib/tools/elib-lint/analyzers/hostgate"
	"github.com/drachir000/elib/tools/elib-lint/analyzers/loreloop"
	"github.com/drachir000/elib/tools/elib-lint/analyzers/markerwrite"
)

// All returns all analyzers to run.
func All() []*analysis.Analyzer {
	return []*analysis.Analyzer{
		loreloop.Analyzer,
		markerwrite.Analyzer,
		hostgate.Analyzer,
	}
}
