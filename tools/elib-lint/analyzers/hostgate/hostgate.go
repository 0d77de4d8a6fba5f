// Package hostgate detects calls into the host enchantment table that bypass
// the registry.
package hostgate

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer reports gate and index changes on the host table made outside the
// registry. The registry holds the lock that keeps open/insert/close atomic.
var Analyzer = &analysis.Analyzer{
	Name:     "hostgate",
	Doc:      "detects host enchantment table mutations outside the registry",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// tableTypes are the table types by package path suffix.
var tableTypes = map[string]string{
	"/domain/ports":        "EnchantmentTable",
	"/infrastructure/host": "Table",
}

var mutators = map[string]bool{
	"OpenForInsertion":  true,
	"Insert":            true,
	"CloseForInsertion": true,
	"RemoveIndexes":     true,
}

var allowedSuffixes = []string{
	"/domain/services",
	"/infrastructure/host",
}

func run(pass *analysis.Pass) (interface{}, error) {
	for _, s := range allowedSuffixes {
		if strings.HasSuffix(pass.Pkg.Path(), s) {
			return nil, nil
		}
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

		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || !mutators[sel.Sel.Name] {
			return
		}

		selection, ok := pass.TypesInfo.Selections[sel]
		if !ok || selection.Kind() != types.MethodVal {
			return
		}

		if isTable(selection.Recv()) {
			pass.Reportf(call.Pos(),
				"%s called on the host table directly - go through the Registry",
				sel.Sel.Name)
		}
	})

	return nil, nil
}

func isTable(t types.Type) bool {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}
	path := named.Obj().Pkg().Path()
	for suffix, name := range tableTypes {
		if strings.HasSuffix(path, suffix) && named.Obj().Name() == name {
			return true
		}
	}
	return false
}
