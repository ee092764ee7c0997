package reveal

import (
	"fmt"

	"github.com/lixenwraith/grade-unboxing/audio"
	"github.com/lixenwraith/grade-unboxing/grade"
	"github.com/lixenwraith/grade-unboxing/particle"
)

// Surface consumes render commands for the overlay
// ViewportWidth is queried once per session, at start
type Surface interface {
	InitSlots(symbols []grade.Symbol)
	Highlight(index int)
	ScrollTo(offset int)
	MarkCandidate(index int)
	Unmark(index int)
	Reveal(index int, text string)
	Burst(b particle.Burst)
	Close()
	ViewportWidth() int
}

// Sounder plays reveal sounds, returning false when nothing was played
type Sounder interface {
	Play(ev audio.Event) bool
}

type silentSounder struct{}

func (silentSounder) Play(audio.Event) bool { return false }

// CommandKind identifies a recorded surface command
type CommandKind int

const (
	CmdInitSlots CommandKind = iota
	CmdHighlight
	CmdScrollTo
	CmdMarkCandidate
	CmdUnmark
	CmdReveal
	CmdBurst
	CmdClose
)

var commandNames = [...]string{"initSlots", "highlight", "scrollTo", "markCandidate", "unmark", "reveal", "burst", "close"}

func (k CommandKind) String() string {
	if k < 0 || int(k) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[k]
}

// Command is one recorded surface call
type Command struct {
	Kind  CommandKind
	Index int // Slot index, offset for ScrollTo, slot count for InitSlots
	Text  string
	Burst particle.Burst
}

func (c Command) String() string {
	switch c.Kind {
	case CmdReveal:
		return fmt.Sprintf("%s(%d, %q)", c.Kind, c.Index, c.Text)
	case CmdBurst:
		return fmt.Sprintf("%s(%d particles at %.1f,%.1f)", c.Kind, len(c.Burst.Particles), c.Burst.Anchor.X, c.Burst.Anchor.Y)
	case CmdClose:
		return c.Kind.String() + "()"
	default:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	}
}

// Recorder is a headless Surface that keeps every command
type Recorder struct {
	Width    int
	Commands []Command
	OnRecord func(Command)
}

// NewRecorder creates a recorder reporting the given viewport width
func NewRecorder(width int) *Recorder {
	return &Recorder{Width: width}
}

func (r *Recorder) record(c Command) {
	r.Commands = append(r.Commands, c)
	if r.OnRecord != nil {
		r.OnRecord(c)
	}
}

func (r *Recorder) InitSlots(symbols []grade.Symbol) {
	r.record(Command{Kind: CmdInitSlots, Index: len(symbols), Text: symbolText(symbols)})
}
func (r *Recorder) Highlight(index int)     { r.record(Command{Kind: CmdHighlight, Index: index}) }
func (r *Recorder) ScrollTo(offset int)     { r.record(Command{Kind: CmdScrollTo, Index: offset}) }
func (r *Recorder) MarkCandidate(index int) { r.record(Command{Kind: CmdMarkCandidate, Index: index}) }
func (r *Recorder) Unmark(index int)        { r.record(Command{Kind: CmdUnmark, Index: index}) }
func (r *Recorder) Reveal(index int, text string) {
	r.record(Command{Kind: CmdReveal, Index: index, Text: text})
}
func (r *Recorder) Burst(b particle.Burst) { r.record(Command{Kind: CmdBurst, Burst: b}) }
func (r *Recorder) Close()                 { r.record(Command{Kind: CmdClose}) }
func (r *Recorder) ViewportWidth() int     { return r.Width }

// Count returns how many commands of kind were recorded
func (r *Recorder) Count(kind CommandKind) int {
	n := 0
	for _, c := range r.Commands {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent command of kind
func (r *Recorder) Last(kind CommandKind) (Command, bool) {
	for i := len(r.Commands) - 1; i >= 0; i-- {
		if r.Commands[i].Kind == kind {
			return r.Commands[i], true
		}
	}
	return Command{}, false
}

// Reset drops recorded commands
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func symbolText(symbols []grade.Symbol) string {
	buf := make([]rune, len(symbols))
	for i, s := range symbols {
		buf[i] = rune(s)
	}
	return string(buf)
}
