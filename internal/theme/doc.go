// Package theme defines the four network themes and their colour palettes.
//
// Themes form a closed ring:
//
//	CYBER -> NOVA -> VOID -> NEBULA -> CYBER
//
// [Controller] owns the active theme and pushes every change to its
// listeners. Palettes can be recoloured from a TOML file with
// [LoadOverrides]; the ring itself never changes.
package theme
