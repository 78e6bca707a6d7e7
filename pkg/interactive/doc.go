// Package interactive assembles classified, formatted records into the
// ordered list of choices and separators shown by the selection prompt.
//
// The pipeline is a pure transform over one input slice:
//
//	records -> filtering.Select (per group) -> display.FormatRecord (per record)
//	        -> output.Table.Build (per group) -> AssembleGroup -> BuildChoiceList
//
// Nothing in this package mutates the records it is given. Each Choice keeps
// a copy of the record it was built from, and that copy is what the prompt
// returns for a selected choice.
//
// After a selection, BuildPlan turns the chosen records into the installer
// command lines that would update them. Commands are printed, never run.
package interactive
