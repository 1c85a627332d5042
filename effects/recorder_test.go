package effects

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/phanxgames/cursorfx"
)

func TestRecorder(t *testing.T) {
	fx := newRemapper(t)
	a := newBox("a")
	fx.Register(a)
	rec := &Recorder{}
	fx.Bind(rec, a)

	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorEnter, TargetID: "a"})
	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorDown, TargetID: "a"})
	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindCursorDown, TargetID: "other"})
	fx.Step(1.0 / 60)
	fx.Step(1.0 / 60)

	want := []Call{
		{Method: "CursorEnter", ObjectID: "a", Event: cursorfx.Event{Type: cursorfx.KindCursorEnter, TargetID: "a"}},
		{Method: "CursorDown", ObjectID: "a", Event: cursorfx.Event{Type: cursorfx.KindCursorDown, TargetID: "a"}},
	}
	if diff := cmp.Diff(want, rec.Calls); diff != "" {
		t.Errorf("calls (-want +got):\n%s", diff)
	}
	if rec.Updates != 2 {
		t.Errorf("Updates = %d, want 2", rec.Updates)
	}

	last, ok := rec.Last()
	if !ok || last.Method != "CursorDown" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}
	rec.Reset()
	if _, ok := rec.Last(); ok || rec.Updates != 0 {
		t.Error("Reset did not clear")
	}
}

func TestRecorderLegacyScheme(t *testing.T) {
	fx := cursorfx.New(cursorfx.Options{Logger: cursorfx.NewLogger(io.Discard)})
	a := newBox("a")
	fx.Register(a)
	rec := &Recorder{}
	fx.Bind(rec, a)

	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindHoloCursorMove, TargetID: "a"})
	fx.Dispatch(cursorfx.RawEvent{Type: cursorfx.KindHoloCursorUp, TargetID: "a"})

	var methods []string
	for _, c := range rec.Calls {
		methods = append(methods, c.Method)
	}
	if diff := cmp.Diff([]string{"HoloCursorMove", "HoloCursorUp"}, methods); diff != "" {
		t.Errorf("methods (-want +got):\n%s", diff)
	}
}

func TestRecorderLimit(t *testing.T) {
	fx := newRemapper(t)
	a := newBox("a")
	fx.Register(a)
	rec := &Recorder{Limit: 2}
	fx.Bind(rec, a)

	for _, kind := range []string{cursorfx.KindCursorEnter, cursorfx.KindCursorDown, cursorfx.KindCursorUp} {
		fx.Dispatch(cursorfx.RawEvent{Type: kind, TargetID: "a"})
	}

	var methods []string
	for _, c := range rec.Calls {
		methods = append(methods, c.Method)
	}
	if diff := cmp.Diff([]string{"CursorDown", "CursorUp"}, methods); diff != "" {
		t.Errorf("methods (-want +got):\n%s", diff)
	}
}
