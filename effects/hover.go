package effects

import (
	"github.com/phanxgames/cursorfx"
	"github.com/tanema/gween/ease"
)

// HoverScale grows an object while the cursor is over it.
type HoverScale struct {
	// Factor multiplies the object's resting scale while hovered.
	Factor float64
	// Duration of each transition in seconds.
	Duration float32
	// Ease is the easing function. Defaults to ease.OutQuad.
	Ease ease.TweenFunc

	rest   map[*cursorfx.Node]float64
	tweens tweenSet
}

// NewHoverScale creates a HoverScale effect.
func NewHoverScale(factor float64, duration float32) *HoverScale {
	return &HoverScale{
		Factor:   factor,
		Duration: duration,
		Ease:     ease.OutQuad,
		rest:     make(map[*cursorfx.Node]float64),
		tweens:   make(tweenSet),
	}
}

func (h *HoverScale) CursorEnter(obj *cursorfx.Node, _ cursorfx.Event) {
	rest, ok := h.rest[obj]
	if !ok {
		rest = obj.Scale
		h.rest[obj] = rest
	}
	h.tweens[obj] = tweenScale(obj, rest*h.Factor, h.Duration, h.Ease)
}

func (h *HoverScale) CursorLeave(obj *cursorfx.Node, _ cursorfx.Event) {
	rest, ok := h.rest[obj]
	if !ok {
		return
	}
	h.tweens[obj] = tweenScale(obj, rest, h.Duration, h.Ease)
}

// HoloCursorEnter and HoloCursorLeave let HoverScale work with the legacy scheme.
func (h *HoverScale) HoloCursorEnter(obj *cursorfx.Node, ev cursorfx.Event) { h.CursorEnter(obj, ev) }

func (h *HoverScale) HoloCursorLeave(obj *cursorfx.Node, ev cursorfx.Event) { h.CursorLeave(obj, ev) }

// Update advances running transitions. The state is left untouched.
func (h *HoverScale) Update(state cursorfx.State) cursorfx.State {
	h.tweens.update(state.Delta())
	return nil
}

// Highlight tints an object while the cursor is over it.
type Highlight struct {
	Color    cursorfx.Color
	Duration float32
	Ease     ease.TweenFunc

	rest   map[*cursorfx.Node]cursorfx.Color
	tweens tweenSet
}

// NewHighlight creates a Highlight effect.
func NewHighlight(c cursorfx.Color, duration float32) *Highlight {
	return &Highlight{
		Color:    c,
		Duration: duration,
		Ease:     ease.Linear,
		rest:     make(map[*cursorfx.Node]cursorfx.Color),
		tweens:   make(tweenSet),
	}
}

func (h *Highlight) CursorEnter(obj *cursorfx.Node, _ cursorfx.Event) {
	if _, ok := h.rest[obj]; !ok {
		h.rest[obj] = obj.Color
	}
	h.tweens[obj] = tweenColor(obj, h.Color, h.Duration, h.Ease)
}

func (h *Highlight) CursorLeave(obj *cursorfx.Node, _ cursorfx.Event) {
	rest, ok := h.rest[obj]
	if !ok {
		return
	}
	h.tweens[obj] = tweenColor(obj, rest, h.Duration, h.Ease)
}

func (h *Highlight) HoloCursorEnter(obj *cursorfx.Node, ev cursorfx.Event) { h.CursorEnter(obj, ev) }

func (h *Highlight) HoloCursorLeave(obj *cursorfx.Node, ev cursorfx.Event) { h.CursorLeave(obj, ev) }

func (h *Highlight) Update(state cursorfx.State) cursorfx.State {
	h.tweens.update(state.Delta())
	return nil
}
