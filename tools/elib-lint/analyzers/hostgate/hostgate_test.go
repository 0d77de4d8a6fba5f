package hostgate_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/drachir000/elib/tools/elib-lint/analyzers/hostgate"
)

func TestAnalyzer(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, hostgate.Analyzer, "a", "example.com/elib/domain/services")
}
