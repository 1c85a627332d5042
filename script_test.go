package cursorfx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/math/f64"
)

func TestLoadEventScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "cursor", "type": "cursordown", "target": "a1", "origin": [0, 1, 2], "direction": [0, 0, -1]},
			{"action": "interact", "interaction": "hoverOver", "target": "a1"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadEventScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []scriptStep{
		{Action: "cursor", Type: "cursordown", Target: "a1", Origin: f64.Vec3{0, 1, 2}, Direction: f64.Vec3{0, 0, -1}},
		{Action: "interact", Interaction: "hoverOver", Target: "a1"},
		{Action: "click", X: 100, Y: 200},
		{Action: "wait", Frames: 3},
	}
	if diff := cmp.Diff(want, runner.steps); diff != "" {
		t.Errorf("steps (-want +got):\n%s", diff)
	}
}

func TestLoadEventScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "screenshot"}]}`},
		{"cursor without type", `{"steps": [{"action": "cursor", "target": "a"}]}`},
		{"interact without interaction", `{"steps": [{"action": "interact"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadEventScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_Cursor(t *testing.T) {
	r := New(quietOptions(Options{}))
	a := newObject("a1")
	r.Register(a)
	got := recordEvents(a, KindHoloCursorDown)

	runner, err := LoadEventScript([]byte(`{"steps": [
		{"action": "cursor", "type": "holocursordown", "target": "a1", "direction": [0, 0, -1]}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)

	r.Step(1.0 / 60)
	if len(*got) != 1 {
		t.Fatalf("events = %d, want 1", len(*got))
	}
	if (*got)[0].Ray.Direction.Z != -1 {
		t.Errorf("ray = %+v", (*got)[0].Ray)
	}
	if !runner.Done() {
		t.Error("runner should be done after its only step")
	}
}

// In the host with the current scheme the reported target is the object
// itself, looked up by id.
func TestRunnerStep_CursorInHost(t *testing.T) {
	scene := NewScene()
	r := New(quietOptions(Options{Scene: scene, Host: newFakeHost(true)}))
	a := newObject("a1")
	r.Register(a)
	got := recordEvents(a, KindCursorUp)

	runner, err := LoadEventScript([]byte(`{"steps": [{"action": "cursor", "type": "cursorup", "target": "a1"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)
	r.Step(1.0 / 60)

	if len(*got) != 1 {
		t.Errorf("events = %d, want 1", len(*got))
	}
}

func TestRunnerStep_CursorUnregisteredTargetInHost(t *testing.T) {
	fallback := newObject("fallback")
	r := New(quietOptions(Options{Scene: NewScene(), Host: newFakeHost(true), DefaultTarget: fallback}))
	r.Register(newObject("a1"))
	got := recordEvents(fallback, KindCursorDown)

	runner, err := LoadEventScript([]byte(`{"steps": [{"action": "cursor", "type": "cursordown", "target": "ghost"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)
	r.Step(1.0 / 60)

	if len(*got) != 0 {
		t.Errorf("default target got %d events, want 0", len(*got))
	}
	if s := r.Stats(); s.Unresolved != 1 || s.Emitted != 0 {
		t.Errorf("stats = %+v, want 1 unresolved and nothing emitted", s)
	}
	ev, ok := r.State().LastEvent()
	if !ok || ev.TargetID != "ghost" {
		t.Errorf("lastEvent = %+v, %v; want target ghost", ev, ok)
	}
}

func TestRunnerStep_Interact(t *testing.T) {
	r := New(quietOptions(Options{Scene: NewScene()}))
	a := newObject("a1")
	r.Register(a)
	f := &recordingEffect{}
	r.Bind(f, a)

	runner, err := LoadEventScript([]byte(`{"steps": [
		{"action": "interact", "interaction": "hoverOver", "target": "a1"},
		{"action": "interact", "interaction": "select", "target": "a1"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)
	r.Step(1.0 / 60)
	r.Step(1.0 / 60)

	var methods []string
	for _, c := range f.calls {
		methods = append(methods, c.method)
	}
	if diff := cmp.Diff([]string{"CursorEnter", "CursorDown"}, methods); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	r := New(quietOptions(Options{}))
	a := newObject("a1")
	r.Register(a)
	got := recordEvents(a, KindHoloCursorMove)

	runner, err := LoadEventScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "cursor", "type": "holocursormove", "target": "a1"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)

	for i := 0; i < 3; i++ {
		r.Step(1.0 / 60)
	}
	if len(*got) != 0 {
		t.Fatal("cursor step ran before the wait elapsed")
	}
	r.Step(1.0 / 60)
	if len(*got) != 1 {
		t.Errorf("events = %d after wait, want 1", len(*got))
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	r := New(quietOptions(Options{}))
	obj, _ := newMeshObject("a")
	obj.Position = Vec3{Z: -5}
	r.Register(obj)
	r.EnablePointerInteraction(NewCamera(Rect{Width: 100, Height: 100}))
	r.PointerController().SetSource(nil)
	downs := recordEvents(obj, KindHoloCursorDown)
	ups := recordEvents(obj, KindHoloCursorUp)

	runner, err := LoadEventScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)

	// Frame 1 queues press+release and consumes the press.
	r.Step(1.0 / 60)
	if runner.Done() {
		t.Error("runner should not be done while injected samples are pending")
	}
	// Frame 2 consumes the release; frame 3 finalizes.
	r.Step(1.0 / 60)
	r.Step(1.0 / 60)
	if !runner.Done() {
		t.Error("runner should be done after the queue drained")
	}
	if len(*downs) != 1 || len(*ups) != 1 {
		t.Errorf("downs = %d, ups = %d; want 1 each", len(*downs), len(*ups))
	}
}

func TestRunnerStep_ClickWithoutPointerLogs(t *testing.T) {
	r := New(quietOptions(Options{}))
	runner, err := LoadEventScript([]byte(`{"steps": [{"action": "hover", "x": 1, "y": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	r.SetScriptRunner(runner)
	r.Step(1.0 / 60)
	if !runner.Done() {
		t.Error("runner should skip the step and finish")
	}
}
