// elib-lint is a custom static analyzer for elib's enchantment and lore rules.
package main

import (
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/drachir000/elib/tools/elib-lint/analyzers"
)

func main() {
	multichecker.Main(analyzers.All()...)
}
