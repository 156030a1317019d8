// Package main hosts the videoinsights CLI entrypoint and command graph.
//
// The Cobra command tree exposes the two dataset jobs: "durations" copies
// video durations from the results document into the primary dataset, and
// "analyze" prints the source agreement report. Configuration resolution and
// logger setup are centralized in commandContext so subcommands only apply
// their flag overrides and call into the internal packages.
package main
