// Package background simulates and draws the neural network behind the page.
//
// Nodes drift across a unit square, link to neighbours within a radius and
// carry pulses along those links. The network is drawn on a braille [Canvas]
// (2x4 dots per cell) and coloured with the active theme's palette.
package background
