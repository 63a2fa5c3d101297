// Package prompt provides the interactive project picker.
//
// The picker renders on stderr so a selection prompt can sit inside an
// eval pipeline whose stdout is captured by the shell.
package prompt
