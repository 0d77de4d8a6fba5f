// Package markerwrite detects writes to the lore marker set outside the
// reconciler.
package markerwrite

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// Analyzer reports calls to the codec's marker writers from packages other
// than the codec itself and the domain services. Anything else writing
// markers makes the reconciler treat foreign lines as its own.
var Analyzer = &analysis.Analyzer{
	Name:     "markerwrite",
	Doc:      "detects lore marker writes outside the reconciler",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

const codecSuffix = "/domain/codec"

var markerFuncs = map[string]bool{
	"WriteMarkerLines": true,
	"WriteSeparator":   true,
}

// allowedSuffixes are the packages that may write markers.
var allowedSuffixes = []string{
	"/domain/codec",
	"/domain/services",
}

func run(pass *analysis.Pass) (interface{}, error) {
	if allowed(pass.Pkg.Path()) {
		return nil, nil
	}

	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.CallExpr)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		call := n.(*ast.CallExpr)

		if strings.HasSuffix(pass.Fset.File(call.Pos()).Name(), "_test.go") {
			return
		}

		fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
		if !ok || fn.Pkg() == nil {
			return
		}

		if strings.HasSuffix(fn.Pkg().Path(), codecSuffix) && markerFuncs[fn.Name()] {
			pass.Reportf(call.Pos(),
				"codec.%s called outside the reconciler - use Reconciler.UpdateDescription",
				fn.Name())
		}
	})

	return nil, nil
}

func allowed(path string) bool {
	for _, s := range allowedSuffixes {
		if strings.HasSuffix(path, s) {
			return true
		}
	}
	return false
}
