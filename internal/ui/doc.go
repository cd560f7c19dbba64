// Package ui renders the portfolio page as a Bubble Tea program.
//
// The page is a scrollable viewport drawn over the animated [background]
// network, with a control panel in the bottom-left corner and a full report
// overlay for the expanded project. All state lives in a [session.Session];
// the model only translates input into session calls.
//
// # Key Bindings
//
//	Tab/S-Tab - Select next/previous project
//	Enter     - Read the selected project's full report
//	Esc/X     - Close the report
//	T         - Rewire the network (cycle theme)
//	+/-       - Denser/sparser network
//	J/K, G/g  - Scroll, bottom/top
//	?         - Toggle full help
//
// Mouse clicks on cards, READ_FULL_REPORT, REWIRE_NET and the density slider
// work when mouse support is enabled.
package ui
