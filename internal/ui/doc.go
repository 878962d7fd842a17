// Package ui contains the Bubble Tea program that demonstrates the focus tree.
//
// The layout is one container region holding a box per list and a line per
// item. Every region is registered with a focus.Manager when the program
// starts, innermost first, so that each list adopts its items and the
// container adopts the lists. Keys are translated into focus commands and
// sent through the command bus (internal/ui/command); the resulting
// AppliedMsg carries the new focus.State, which is the only thing View
// reads when deciding which box and line to highlight.
//
// The jump palette (internal/ui/state) lists every registered region with a
// fuzzy filter and issues SetFocus for the chosen one. The inspector prints
// the flattened forest with depths and subtree sizes.
package ui
