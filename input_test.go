package parallax

import (
	"errors"
	"testing"
)

func TestCallbackHandleRemove(t *testing.T) {
	e := newTestEngine(t, snapConfig(box("a", 50, 50, 20, 20)))
	var calls []int
	h1 := e.OnClick(func(ClickContext) { calls = append(calls, 1) })
	e.OnClick(func(ClickContext) { calls = append(calls, 2) })
	h3 := e.OnClick(func(ClickContext) { calls = append(calls, 3) })

	h1.Remove()
	h1.Remove() // second remove is a no-op
	e.Click(50, 50)
	if len(calls) != 2 || calls[0] != 2 || calls[1] != 3 {
		t.Fatalf("calls = %v, want [2 3]", calls)
	}

	h3.Remove()
	calls = nil
	e.Click(50, 50)
	if len(calls) != 1 || calls[0] != 2 {
		t.Errorf("calls = %v, want [2]", calls)
	}

	var zero CallbackHandle
	zero.Remove()
}

func TestAssetErrorHandleRemove(t *testing.T) {
	e := newTestEngine(t, snapConfig())
	broken, _ := NewImageEntity("broken", Point{}, 1, 1, &fakeAsset{err: errors.New("boom")})
	_ = e.Add(broken)

	fired := 0
	h := e.OnAssetError(func(string, error) { fired++ })
	h.Remove()
	e.Tick(Frame{DT: 1.0 / 60})
	if fired != 0 {
		t.Errorf("removed handler fired %d times", fired)
	}
}

func TestClickContextWorldCoordinates(t *testing.T) {
	cfg := snapConfig(box("a", 100, 100, 40, 40))
	cfg.ParallaxCoefficient = 1
	e := newTestEngine(t, cfg)
	e.PointerMove(0, 0)
	e.PointerMove(10, -10)
	e.Tick(Frame{DT: 1.0 / 60})

	var got ClickContext
	e.OnClick(func(ctx ClickContext) { got = ctx })
	if _, ok := e.Click(110, 90); !ok {
		t.Fatal("expected a hit")
	}
	if got.X != 110 || got.Y != 90 || got.WorldX != 100 || got.WorldY != 100 {
		t.Errorf("ctx = %+v, want screen (110,90) world (100,100)", got)
	}
}

func TestHandlerRemovesItselfDuringClick(t *testing.T) {
	e := newTestEngine(t, snapConfig(box("a", 50, 50, 20, 20)))
	var calls []int
	var h1 CallbackHandle
	h1 = e.OnClick(func(ClickContext) {
		calls = append(calls, 1)
		h1.Remove()
	})
	e.OnClick(func(ClickContext) { calls = append(calls, 2) })
	e.OnClick(func(ClickContext) { calls = append(calls, 3) })

	e.Click(50, 50)
	if len(calls) != 3 || calls[0] != 1 || calls[1] != 2 || calls[2] != 3 {
		t.Fatalf("calls = %v, want [1 2 3]", calls)
	}

	calls = nil
	e.Click(50, 50)
	if len(calls) != 2 || calls[0] != 2 || calls[1] != 3 {
		t.Errorf("second click calls = %v, want [2 3]", calls)
	}
}

func TestAssetErrorHandlerRemovesItself(t *testing.T) {
	e := newTestEngine(t, snapConfig())
	broken, _ := NewImageEntity("broken", Point{}, 1, 1, &fakeAsset{err: errors.New("boom")})
	_ = e.Add(broken)

	var calls []int
	var h1 CallbackHandle
	h1 = e.OnAssetError(func(string, error) {
		calls = append(calls, 1)
		h1.Remove()
	})
	e.OnAssetError(func(string, error) { calls = append(calls, 2) })
	e.OnAssetError(func(string, error) { calls = append(calls, 3) })

	e.Tick(Frame{DT: 1.0 / 60})
	if len(calls) != 3 || calls[0] != 1 || calls[1] != 2 || calls[2] != 3 {
		t.Errorf("calls = %v, want [1 2 3]", calls)
	}
}
