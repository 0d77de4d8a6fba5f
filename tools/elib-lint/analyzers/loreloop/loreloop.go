// Package loreloop detects lore reconciliation inside loops.
package loreloop

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Analyzer detects enchantment changes inside loops that reconcile lore on
// every iteration.
var Analyzer = &analysis.Analyzer{
	Name:     "loreloop",
	Doc:      "detects enchantment changes with updateLore=true inside loops",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// updateLoreArg maps EnchantmentService methods to the index of their
// updateLore argument.
var updateLoreArg = map[string]int{
	"SetLevel":       3,
	"SetLevelString": 3,
	"Remove":         2,
	"RemoveString":   2,
}

func run(pass *analysis.Pass) (interface{}, error) {
	inspect := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.RangeStmt)(nil),
		(*ast.ForStmt)(nil),
	}

	inspect.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch stmt := n.(type) {
		case *ast.RangeStmt:
			body = stmt.Body
		case *ast.ForStmt:
			body = stmt.Body
		}
		if body == nil {
			return
		}

		ast.Inspect(body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}

			idx, ok := updateLoreArg[sel.Sel.Name]
			if !ok || len(call.Args) <= idx {
				return true
			}

			if ident, ok := call.Args[idx].(*ast.Ident); ok && ident.Name == "true" {
				pass.Reportf(call.Pos(),
					"%s reconciles lore inside loop - pass false and call UpdateDescription once after the loop",
					sel.Sel.Name)
			}

			return true
		})
	})

	return nil, nil
}
