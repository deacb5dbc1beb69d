// Package edgelist turns textual edge lists into []core.Edge.
//
// Two formats are supported:
//
//	# text: one "<from> <to> <cost>" triple per line, whitespace separated
//	1 2 5
//	2 3 5
//
//	# yaml
//	edges:
//	  - {from: 1, to: 2, cost: 5}
//	  - {from: 2, to: 3, cost: 5}
//
// Parsing is pure: it reads from an io.Reader and never touches the console.
// Records that do not form exactly three integers are skipped, never fatal:
// each skip is recorded in the returned Report and logged as a warning on the
// configured *slog.Logger. Only I/O failures and undecodable YAML documents
// are returned as errors.
//
// Console input is supported through WithTerminator: reading stops at the
// first line equal to the terminator token (conventionally "end").
package edgelist
