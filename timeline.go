package isoviz

import (
	"fmt"
)

// Timeline is the ordered list of animation steps a scene builds in its
// Construct method. Steps run strictly one after another; all animations
// within a step run in parallel and the step lasts as long as its longest
// animation.
type Timeline struct {
	root  *Group
	steps []step

	// Seek state. Rendering samples the timeline at non-decreasing
	// times; each step is initialized when first entered and pinned to
	// its final state when left behind.
	cursor float64
	states []stepState
}

type step struct {
	anims []Animation
	dur   float64
}

type stepState struct {
	initialized bool
	finalized   bool
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{root: NewGroup()}
}

// Root returns the object tree the timeline draws. Objects enter the tree
// either through Add or when an animation targeting them first plays.
func (tl *Timeline) Root() *Group { return tl.root }

// Add places objects in the scene immediately, with no animation.
func (tl *Timeline) Add(objs ...Object) {
	for _, o := range objs {
		if !tl.root.Contains(o) {
			tl.root.Add(o)
		}
	}
}

// Play appends a step running the given animations in parallel.
func (tl *Timeline) Play(anims ...Animation) {
	if len(anims) == 0 {
		return
	}
	dur := 0.0
	for _, a := range anims {
		if a.Duration() > dur {
			dur = a.Duration()
		}
	}
	tl.steps = append(tl.steps, step{anims: anims, dur: dur})
	tl.states = append(tl.states, stepState{})
}

// Wait appends a hold of the given duration in seconds.
func (tl *Timeline) Wait(seconds float64) {
	if seconds <= 0 {
		return
	}
	tl.steps = append(tl.steps, step{dur: seconds})
	tl.states = append(tl.states, stepState{})
}

// Duration returns the total running time of the timeline in seconds.
func (tl *Timeline) Duration() float64 {
	total := 0.0
	for _, s := range tl.steps {
		total += s.dur
	}
	return total
}

// Steps returns the number of steps, waits included.
func (tl *Timeline) Steps() int { return len(tl.steps) }

// Seek advances the timeline to absolute time t and applies every
// animation state accordingly. Seeking backwards is an error: animations
// capture state when their step starts, so time only moves forward.
func (tl *Timeline) Seek(t float64) error {
	if t < tl.cursor {
		return fmt.Errorf("isoviz: seek backwards from %.3fs to %.3fs", tl.cursor, t)
	}
	tl.cursor = t

	start := 0.0
	for i := range tl.steps {
		s := &tl.steps[i]
		state := &tl.states[i]
		end := start + s.dur

		switch {
		case t >= end:
			if !state.finalized {
				tl.enter(i)
				for _, a := range s.anims {
					a.Update(1)
				}
				state.finalized = true
			}
		case t >= start:
			tl.enter(i)
			for _, a := range s.anims {
				// Progress is per animation: shorter animations in
				// the step finish before the step does.
				p := 1.0
				if a.Duration() > 0 {
					p = clamp01((t - start) / a.Duration())
				}
				a.Update(p)
			}
			return nil
		default:
			return nil
		}
		start = end
	}
	return nil
}

// enter initializes step i on first contact: animation targets join the
// scene tree and each animation captures its start state.
func (tl *Timeline) enter(i int) {
	state := &tl.states[i]
	if state.initialized {
		return
	}
	state.initialized = true
	for _, a := range tl.steps[i].anims {
		for _, target := range a.Targets() {
			tl.Add(target)
		}
		a.Init()
	}
	Logger().Debug("timeline step entered", "step", i, "animations", len(tl.steps[i].anims))
}
