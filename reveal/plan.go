package reveal

import (
	"math"
	"time"

	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/sequence"
)

// stepPlan is the decision for one step, computed without side effects
type stepPlan struct {
	index     int
	exhausted bool
	highlight int
	offset    int
	candidate bool
	reveal    bool
	nextDelay time.Duration
}

// planStep advances anim by one card and decides what the step emits
func planStep(anim AnimationState, seq *sequence.Sequence, slotWidth, viewport int) stepPlan {
	idx := anim.CurrentIndex + 1
	n := seq.Len()

	if idx >= n {
		return stepPlan{index: idx, exhausted: true}
	}

	p := stepPlan{
		index:     idx,
		highlight: seq.Clamp(idx),
		offset:    centerOffset(idx, slotWidth, viewport),
		candidate: idx == seq.TentativeIndex,
		reveal:    idx == seq.FinalIndex && !anim.Revealed,
		nextDelay: anim.StepDelay,
	}
	if p.reveal {
		return p
	}

	p.nextDelay += decelerate(idx, n)
	return p
}

// decelerate returns the delay increase for step idx of n, zero before the threshold
func decelerate(idx, n int) time.Duration {
	if float64(idx) <= constants.DecelerationThreshold*float64(n) {
		return 0
	}
	extra := constants.DecelerationBaseMs + int(math.Floor(float64(idx)/float64(n)*constants.DecelerationScaleMs))
	return time.Duration(extra) * time.Millisecond
}

// centerOffset returns the rail offset placing slot index in the viewport center
func centerOffset(index, slotWidth, viewport int) int {
	return max(0, index*slotWidth-viewport/2+slotWidth/2)
}
