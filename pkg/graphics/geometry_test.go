package graphics

import (
	"image/color"
	"testing"
)

func TestOffsetArithmetic(t *testing.T) {
	a := Offset{X: 3, Y: 4}
	b := Offset{X: -1, Y: 2}

	if got := a.Add(b); got != (Offset{X: 2, Y: 6}) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != (Offset{X: 4, Y: 2}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != (Offset{X: 6, Y: 8}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Distance(); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if a.IsZero() || !(Offset{}).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestColor(t *testing.T) {
	c := RGB(10, 20, 30)
	if got, want := c.NRGBA(), (color.NRGBA{R: 10, G: 20, B: 30, A: 255}); got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
	// Half-transparent colors premultiply through color.Color.
	half := Color{R: 200, A: 128}
	r, _, _, a := half.RGBA()
	if wantR, wantA := uint32(200)*0x101*128/255, uint32(128)*0x101; r != wantR || a != wantA {
		t.Errorf("RGBA() r=%d a=%d, want r=%d a=%d", r, a, wantR, wantA)
	}
	if got := color.NRGBAModel.Convert(White).(color.NRGBA); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("White = %v", got)
	}
}
