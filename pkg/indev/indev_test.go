package indev_test

import (
	"slices"
	"testing"
	"time"

	"github.com/go-drift/embedui/pkg/config"
	"github.com/go-drift/embedui/pkg/graphics"
	"github.com/go-drift/embedui/pkg/indev"
	"github.com/go-drift/embedui/pkg/object"
	uitest "github.com/go-drift/embedui/pkg/testing"
)

// probe records the signals an object receives.
type probe struct {
	object.Base
	got    []object.Signal
	active []*indev.Pointer
	onSig  func(obj *object.Object, sig object.Signal) object.Result
}

func (p *probe) Signal(obj *object.Object, sig object.Signal, param any) object.Result {
	if sig.IsInput() {
		p.got = append(p.got, sig)
		p.active = append(p.active, indev.Active())
		if dev, ok := param.(*indev.Pointer); !ok || dev == nil {
			panic("pointer signal without device param")
		}
	}
	if p.onSig != nil {
		if res := p.onSig(obj, sig); res != object.ResOK {
			return res
		}
	}
	return p.Base.Signal(obj, sig, param)
}

func newTarget(d *object.Display, x, y graphics.Coord) (*object.Object, *probe) {
	obj := object.New(d.Screen(), nil)
	obj.SetPos(x, y)
	obj.SetSize(50, 50)
	obj.SetClickable(true)
	p := &probe{}
	obj.SetHandler(p)
	return obj, p
}

func TestPointer_PressRelease(t *testing.T) {
	d := object.NewDisplay(200, 200)
	obj, p := newTarget(d, 0, 0)
	dev := indev.New(d, uitest.NewFakeClock(), config.Input{})

	dev.Read(graphics.Pt(10, 10), true)
	if dev.Target() != obj {
		t.Fatal("expected the object under the pointer to be pressed")
	}
	dev.Read(graphics.Pt(11, 10), true)
	dev.Read(graphics.Pt(11, 10), false)

	want := []object.Signal{
		object.SignalPressed, object.SignalPressing,
		object.SignalPressing,
		object.SignalReleased,
	}
	if !slices.Equal(p.got, want) {
		t.Errorf("signals = %v, want %v", p.got, want)
	}
	for _, a := range p.active {
		if a != dev {
			t.Error("expected Active to return the reading device")
		}
	}
	if indev.Active() != nil {
		t.Error("expected no active device outside Read")
	}
	if dev.Target() != nil {
		t.Error("expected no target after release")
	}
}

func TestPointer_PressMissesNonClickable(t *testing.T) {
	d := object.NewDisplay(200, 200)
	obj, p := newTarget(d, 0, 0)
	obj.SetClickable(false)
	dev := indev.New(d, uitest.NewFakeClock(), config.Input{})

	dev.Read(graphics.Pt(10, 10), true)
	dev.Read(graphics.Pt(10, 10), false)

	if len(p.got) != 0 {
		t.Errorf("signals = %v, want none", p.got)
	}
}

func TestPointer_PressLostAndSlideOn(t *testing.T) {
	d := object.NewDisplay(200, 200)
	_, pa := newTarget(d, 0, 0)
	_, pb := newTarget(d, 0, 60)
	dev := indev.New(d, uitest.NewFakeClock(), config.Input{DragLimit: 100})

	dev.Read(graphics.Pt(10, 10), true)
	dev.Read(graphics.Pt(10, 70), true)
	dev.Read(graphics.Pt(10, 70), false)

	wantA := []object.Signal{object.SignalPressed, object.SignalPressing, object.SignalPressLost}
	if !slices.Equal(pa.got, wantA) {
		t.Errorf("first signals = %v, want %v", pa.got, wantA)
	}
	wantB := []object.Signal{object.SignalPressed, object.SignalPressing, object.SignalReleased}
	if !slices.Equal(pb.got, wantB) {
		t.Errorf("second signals = %v, want %v", pb.got, wantB)
	}
}

func TestPointer_Drag(t *testing.T) {
	d := object.NewDisplay(200, 200)
	obj, p := newTarget(d, 0, 0)
	dev := indev.New(d, uitest.NewFakeClock(), config.Input{DragLimit: 10})

	dev.Read(graphics.Pt(10, 10), true)
	dev.Read(graphics.Pt(15, 10), true)
	if dev.Dragging() {
		t.Fatal("moved less than the drag limit")
	}
	dev.Read(graphics.Pt(80, 10), true)
	if !dev.Dragging() {
		t.Fatal("expected a drag")
	}
	if dev.Target() != obj {
		t.Error("a drag must stay on the object it started on")
	}
	dev.Read(graphics.Pt(80, 10), false)

	if p.got[len(p.got)-1] != object.SignalReleased {
		t.Errorf("last signal = %v, want released", p.got[len(p.got)-1])
	}
	if slices.Contains(p.got, object.SignalPressLost) {
		t.Error("a drag must not lose the press")
	}
	if dev.Dragging() {
		t.Error("expected drag to end on release")
	}
}

func TestPointer_LongPress(t *testing.T) {
	d := object.NewDisplay(200, 200)
	_, p := newTarget(d, 0, 0)
	clk := uitest.NewFakeClock()
	dev := indev.New(d, clk, config.Input{LongPress: 200 * time.Millisecond, LongPressRepeat: 50 * time.Millisecond})

	dev.Read(graphics.Pt(10, 10), true)
	for range 10 {
		clk.Advance(25 * time.Millisecond)
		dev.Read(graphics.Pt(10, 10), true)
	}
	dev.Read(graphics.Pt(10, 10), false)

	count := func(sig object.Signal) int {
		n := 0
		for _, s := range p.got {
			if s == sig {
				n++
			}
		}
		return n
	}
	if n := count(object.SignalLongPress); n != 1 {
		t.Errorf("long presses = %d, want 1", n)
	}
	// 200ms long press, then repeats at 250ms
	if n := count(object.SignalLongPressRepeat); n != 1 {
		t.Errorf("repeats = %d, want 1", n)
	}
}

func TestPointer_TargetDeletedBySignal(t *testing.T) {
	d := object.NewDisplay(200, 200)
	_, p := newTarget(d, 0, 0)
	p.onSig = func(obj *object.Object, sig object.Signal) object.Result {
		if sig == object.SignalPressed {
			return obj.Delete()
		}
		return object.ResOK
	}
	dev := indev.New(d, uitest.NewFakeClock(), config.Input{})

	dev.Read(graphics.Pt(10, 10), true)
	if dev.Target() != nil {
		t.Error("expected no target after it was deleted")
	}
	dev.Read(graphics.Pt(10, 10), false)

	if !slices.Equal(p.got, []object.Signal{object.SignalPressed}) {
		t.Errorf("signals = %v, want only pressed", p.got)
	}
}

func TestPointer_TargetDeletedElsewhere(t *testing.T) {
	d := object.NewDisplay(200, 200)
	obj, _ := newTarget(d, 0, 0)
	dev := indev.New(d, uitest.NewFakeClock(), config.Input{})

	dev.Read(graphics.Pt(10, 10), true)
	obj.Delete()
	if dev.Target() != nil {
		t.Error("expected the device to forget the deleted object")
	}
}
