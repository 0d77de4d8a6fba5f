package main

// Default limits for CLI commands.
const (
	DefaultListLimit = 50
)

// Valid output formats.
var validFormats = []string{"text", "json"}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
