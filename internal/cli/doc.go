// Package cli defines the Cobra command tree for the tm CLI. Each file
// registers related commands with the root command. Commands resolve the
// configuration once, build a manager from it and only handle argument
// parsing and output formatting.
package cli
