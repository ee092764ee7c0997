package render

import (
	"github.com/gdamore/tcell/v2"
)

// RgbPanelBgRGB is the panel background as raw components, particles fade toward it
var RgbPanelBgRGB = [3]uint8{36, 40, 59}

// RGB color definitions for the reveal overlay
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText        = tcell.NewRGBColor(192, 202, 245) // Default foreground
	RgbHiddenValue = tcell.NewRGBColor(43, 107, 246)  // Open-case button blue
	RgbRevealText  = tcell.NewRGBColor(255, 209, 0)   // Revealed grade

	RgbPanelBg     = tcell.NewRGBColor(int32(RgbPanelBgRGB[0]), int32(RgbPanelBgRGB[1]), int32(RgbPanelBgRGB[2]))
	RgbPanelBorder = tcell.NewRGBColor(122, 162, 247)
	RgbPanelTitle  = tcell.NewRGBColor(255, 255, 255)
	RgbMarker      = tcell.NewRGBColor(255, 158, 100)
	RgbHint        = tcell.NewRGBColor(120, 124, 153)

	RgbSlot          = tcell.NewRGBColor(86, 95, 137)  // Idle card
	RgbSlotCurrent   = tcell.NewRGBColor(224, 175, 104) // Card under the marker
	RgbSlotCandidate = tcell.NewRGBColor(110, 231, 183) // Near-miss flash
	RgbSlotSelected  = tcell.NewRGBColor(255, 209, 0)   // Final reveal
)
