package core

// Color represents a foreground color for a screen cell.
// The platform maps these to ANSI 256-color codes.
type Color uint8

// Palette used by the flyer scene.
const (
	ColorDefault Color = iota
	ColorSky
	ColorRock
	ColorRockNear
	ColorFlyer
	ColorHUD
	ColorWarning
	ColorHorizon
)
