package cursorfx

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f64"
)

// scriptStep represents a single action in an event script.
type scriptStep struct {
	Action      string   `json:"action"`
	Type        string   `json:"type,omitempty"`
	Target      string   `json:"target,omitempty"`
	Interaction string   `json:"interaction,omitempty"`
	Origin      f64.Vec3 `json:"origin,omitempty"`
	Direction   f64.Vec3 `json:"direction,omitempty"`
	X           float64  `json:"x,omitempty"`
	Y           float64  `json:"y,omitempty"`
	Frames      int      `json:"frames,omitempty"`
}

// eventScript is the top-level JSON structure for an event script.
type eventScript struct {
	Steps []scriptStep `json:"steps"`
}

const (
	scriptCursor   = "cursor"   // dispatch a raw cursor event
	scriptInteract = "interact" // run a controller interaction
	scriptClick    = "click"    // inject a click into the pointer controller
	scriptHover    = "hover"    // inject a hover sample into the pointer controller
	scriptWait     = "wait"     // idle for a number of frames
)

// ScriptRunner replays cursor events, interactions and pointer input across
// frames. Attach it with Remapper.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadEventScript parses a JSON event script.
func LoadEventScript(jsonData []byte) (*ScriptRunner, error) {
	var script eventScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, errors.Wrap(err, "parse event script")
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse event script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case scriptCursor:
			if st.Type == "" {
				return nil, errors.Errorf("parse event script: step %d: cursor step without type", i)
			}
		case scriptInteract:
			if st.Interaction == "" {
				return nil, errors.Errorf("parse event script: step %d: interact step without interaction", i)
			}
		case scriptClick, scriptHover, scriptWait:
		default:
			return nil, errors.Errorf("parse event script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *ScriptRunner) Done() bool {
	return s.done
}

// step advances the runner by one frame. Called from Remapper.Step.
func (s *ScriptRunner) step(r *Remapper) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if r.pointer != nil && r.pointer.Pending() > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	ray := HostRay{Origin: st.Origin, Direction: st.Direction}
	switch st.Action {
	case scriptCursor:
		raw := RawEvent{Type: st.Type, TargetID: st.Target, Ray: ray}
		if obj, ok := r.Lookup(st.Target); ok {
			raw.Target = obj
		} else if st.Target != "" {
			// Report against a stand-in so the id still reaches resolve.
			raw.Target = &Node{ID: st.Target, Name: st.Target}
		}
		r.Dispatch(raw)
	case scriptInteract:
		var obj *Node
		if st.Target != "" {
			o, ok := r.Lookup(st.Target)
			if !ok {
				r.tracef("script: interact target %q is not registered", st.Target)
			}
			obj = o
		}
		r.Interact(Interaction(st.Interaction), obj, InteractionDetail{Ray: ray.ray()})
	case scriptClick:
		if r.pointer == nil {
			r.errorf("script: click at (%v, %v) without pointer interaction", st.X, st.Y)
			break
		}
		r.pointer.InjectClick(st.X, st.Y)
	case scriptHover:
		if r.pointer == nil {
			r.errorf("script: hover at (%v, %v) without pointer interaction", st.X, st.Y)
			break
		}
		r.pointer.InjectHover(st.X, st.Y)
	case scriptWait:
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	pending := r.pointer != nil && r.pointer.Pending() > 0
	if s.cursor >= len(s.steps) && s.waitCount == 0 && !pending {
		s.done = true
	}
}
