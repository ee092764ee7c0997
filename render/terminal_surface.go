package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grade-unboxing/engine"
	"github.com/lixenwraith/grade-unboxing/grade"
	"github.com/lixenwraith/grade-unboxing/particle"
	"github.com/lixenwraith/grade-unboxing/reveal"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	panelMaxWidth = 72
	panelMinWidth = 24
	panelHeight   = 12
	resultPrompt  = "Result: "
	resultHidden  = "[ Open case ]"
	panelTitle    = " UNBOXING... "
	panelHints    = "[Enter] Reveal  [Esc] Cancel"
)

var _ reveal.Surface = (*TerminalSurface)(nil)

type activeBurst struct {
	burst   particle.Burst
	started time.Time
}

// TerminalSurface draws the reveal overlay on a tcell screen
// All methods must be called from the loop goroutine
type TerminalSurface struct {
	screen     tcell.Screen
	clock      engine.TimeProvider
	slotWidth  int
	slotHeight int

	symbols   []grade.Symbol
	current   int
	selected  int
	offset    int
	candidate map[int]bool
	bursts    []activeBurst
	open      bool
	result    string
}

// NewTerminalSurface creates a surface on screen; clock times particle lifetimes
func NewTerminalSurface(screen tcell.Screen, clock engine.TimeProvider, slotWidth, slotHeight int) *TerminalSurface {
	return &TerminalSurface{
		screen:     screen,
		clock:      clock,
		slotWidth:  slotWidth,
		slotHeight: slotHeight,
		candidate:  make(map[int]bool),
		selected:   -1,
		result:     resultHidden,
	}
}

// panel returns the overlay rectangle for the current screen size
func (t *TerminalSurface) panel() (x, y, w, h int) {
	sw, sh := t.screen.Size()
	w = min(panelMaxWidth, sw-4)
	w = max(w, panelMinWidth)
	// Never wider than the screen, a narrow terminal gets an edge-to-edge panel
	w = max(min(w, sw), 3)
	h = panelHeight
	x = max(0, (sw-w)/2)
	y = max(3, (sh-h)/2)
	return x, y, w, h
}

// ViewportWidth returns the rail's visible width
func (t *TerminalSurface) ViewportWidth() int {
	_, _, w, _ := t.panel()
	return w - 2
}

func (t *TerminalSurface) InitSlots(symbols []grade.Symbol) {
	t.symbols = append(t.symbols[:0], symbols...)
	t.current = 0
	t.selected = -1
	t.offset = 0
	clear(t.candidate)
	t.open = true
	t.redraw()
}

func (t *TerminalSurface) Highlight(index int) {
	t.current = index
	t.redraw()
}

func (t *TerminalSurface) ScrollTo(offset int) {
	t.offset = offset
	t.redraw()
}

func (t *TerminalSurface) MarkCandidate(index int) {
	t.candidate[index] = true
	t.redraw()
}

func (t *TerminalSurface) Unmark(index int) {
	delete(t.candidate, index)
	t.redraw()
}

func (t *TerminalSurface) Reveal(index int, text string) {
	t.selected = index
	t.result = text
	t.redraw()
}

func (t *TerminalSurface) Burst(b particle.Burst) {
	t.bursts = append(t.bursts, activeBurst{burst: b, started: t.clock.Now()})
	t.redraw()
}

func (t *TerminalSurface) Close() {
	t.open = false
	t.bursts = t.bursts[:0]
	clear(t.candidate)
	t.redraw()
}

// IsOpen reports whether the overlay is shown
func (t *TerminalSurface) IsOpen() bool {
	return t.open
}

// Result returns the host value text, hidden until reveal
func (t *TerminalSurface) Result() string {
	return t.result
}

// Frame expires old bursts and redraws, call periodically while particles are live
func (t *TerminalSurface) Frame() {
	if len(t.bursts) == 0 {
		return
	}
	now := t.clock.Now()
	live := t.bursts[:0]
	for _, ab := range t.bursts {
		if !ab.burst.Expired(now.Sub(ab.started)) {
			live = append(live, ab)
		}
	}
	t.bursts = live
	t.redraw()
}

// Resize re-syncs the screen after a terminal size change
func (t *TerminalSurface) Resize() {
	t.screen.Sync()
	t.redraw()
}

func (t *TerminalSurface) redraw() {
	t.screen.Clear()
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)

	sw, sh := t.screen.Size()
	for y := 0; y < sh; y++ {
		for x := 0; x < sw; x++ {
			t.screen.SetContent(x, y, ' ', nil, base)
		}
	}

	t.drawResult(base)
	if t.open {
		t.drawPanel(base)
	}
	t.screen.Show()
}

func (t *TerminalSurface) drawResult(base tcell.Style) {
	t.drawText(2, 1, resultPrompt, base)
	style := base.Foreground(RgbHiddenValue)
	if t.result != resultHidden {
		style = base.Foreground(RgbRevealText).Bold(true)
	}
	t.drawText(2+len(resultPrompt), 1, t.result, style)
}

func (t *TerminalSurface) drawPanel(base tcell.Style) {
	px, py, pw, ph := t.panel()
	panel := base.Background(RgbPanelBg)
	border := panel.Foreground(RgbPanelBorder)

	for y := py; y < py+ph; y++ {
		for x := px; x < px+pw; x++ {
			t.screen.SetContent(x, y, ' ', nil, panel)
		}
	}
	t.drawBorder(px, py, pw, ph, border)
	t.drawText(px+(pw-len(panelTitle))/2, py, panelTitle, panel.Foreground(RgbPanelTitle).Bold(true))

	innerX := px + 1
	innerW := pw - 2
	railY := py + 3

	// Center marker
	t.screen.SetContent(innerX+innerW/2, railY-1, '▼', nil, panel.Foreground(RgbMarker))

	for i, sym := range t.symbols {
		x := innerX + i*t.slotWidth - t.offset
		if x+t.slotWidth <= innerX || x >= innerX+innerW {
			continue
		}
		t.drawSlot(x, railY, innerX, innerX+innerW, sym, t.slotStyle(i, panel))
	}

	t.drawParticles(innerX, railY, innerX+innerW, py+ph-1, panel)
	t.drawText(px+(pw-len(panelHints))/2, py+ph-2, panelHints, panel.Foreground(RgbHint))
}

func (t *TerminalSurface) slotStyle(i int, panel tcell.Style) tcell.Style {
	switch {
	case i == t.selected:
		return panel.Foreground(RgbSlotSelected).Bold(true)
	case t.candidate[i]:
		return panel.Foreground(RgbSlotCandidate).Bold(true)
	case i == t.current:
		return panel.Foreground(RgbSlotCurrent).Bold(true)
	default:
		return panel.Foreground(RgbSlot)
	}
}

// drawSlot draws one card, clipped to [minX, maxX)
func (t *TerminalSurface) drawSlot(x, y, minX, maxX int, sym grade.Symbol, style tcell.Style) {
	w := t.slotWidth - 1
	h := t.slotHeight
	put := func(cx, cy int, r rune) {
		if cx >= minX && cx < maxX {
			t.screen.SetContent(cx, cy, r, nil, style)
		}
	}

	put(x, y, '┌')
	put(x+w-1, y, '┐')
	put(x, y+h-1, '└')
	put(x+w-1, y+h-1, '┘')
	for i := 1; i < w-1; i++ {
		put(x+i, y, '─')
		put(x+i, y+h-1, '─')
	}
	for i := 1; i < h-1; i++ {
		put(x, y+i, '│')
		put(x+w-1, y+i, '│')
	}
	put(x+w/2, y+h/2, rune(sym))
}

func (t *TerminalSurface) drawParticles(originX, originY, maxX, maxY int, panel tcell.Style) {
	if len(t.bursts) == 0 {
		return
	}
	now := t.clock.Now()
	bg := toColorful(RgbPanelBgRGB)

	for _, ab := range t.bursts {
		elapsed := now.Sub(ab.started)
		for _, p := range ab.burst.Particles {
			if !p.Visible(elapsed) {
				continue
			}
			pos := p.Position(ab.burst.Anchor, elapsed, ab.burst.Lifetime)
			x := originX + int(pos.X+0.5)
			y := originY + int(pos.Y+0.5)
			if x < originX || x >= maxX || y < originY-2 || y >= maxY {
				continue
			}
			c := p.Fade(bg, elapsed, ab.burst.Lifetime)
			t.screen.SetContent(x, y, rotationGlyph(p.RotationDeg), nil, panel.Foreground(toTcell(c)))
		}
	}
}

func (t *TerminalSurface) drawBorder(x, y, w, h int, style tcell.Style) {
	t.screen.SetContent(x, y, '╔', nil, style)
	t.screen.SetContent(x+w-1, y, '╗', nil, style)
	t.screen.SetContent(x, y+h-1, '╚', nil, style)
	t.screen.SetContent(x+w-1, y+h-1, '╝', nil, style)

	for i := 1; i < w-1; i++ {
		t.screen.SetContent(x+i, y, '═', nil, style)
		t.screen.SetContent(x+i, y+h-1, '═', nil, style)
	}
	for i := 1; i < h-1; i++ {
		t.screen.SetContent(x, y+i, '║', nil, style)
		t.screen.SetContent(x+w-1, y+i, '║', nil, style)
	}
}

func (t *TerminalSurface) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		t.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// rotationGlyph picks a line glyph approximating a confetti strip at deg
func rotationGlyph(deg float64) rune {
	switch int(deg/45+0.5) % 4 {
	case 0:
		return '─'
	case 1:
		return '╱'
	case 2:
		return '│'
	default:
		return '╲'
	}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func toColorful(rgb [3]uint8) colorful.Color {
	return colorful.Color{R: float64(rgb[0]) / 255, G: float64(rgb[1]) / 255, B: float64(rgb[2]) / 255}
}
