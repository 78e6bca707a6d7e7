// Package prompt implements the interactive checkbox list for package selection.
//
// The prompt is a bubbletea program over the entries of an interactive.Menu.
// Separators are shown but never focused. Confirming returns the records of
// the checked choices in display order; Ctrl+C or Esc returns ErrCanceled.
//
// Keys:
//
//	up/k, down/j  move between choices (wrapping)
//	space         toggle the focused choice
//	a             check all, or uncheck all when everything is checked
//	i             invert the selection
//	enter         confirm
//	ctrl+c, esc   cancel
package prompt
