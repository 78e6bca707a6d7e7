// Package main is the entry point for the depcheck CLI application.
//
// depcheck reads the report of a dependency check, groups the packages
// that need attention by the severity of their update, and lets the user
// pick which ones to update.
package main

import "github.com/ajxudir/depcheck/cmd"

// main delegates command parsing and execution to the cmd package,
// which handles the list, select, config and version subcommands.
func main() {
	cmd.Execute()
}
