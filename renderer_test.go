package ink

import (
	"image/color"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"
)

func newTestRenderer(t *testing.T, w, h float64) (*Surface, *Renderer) {
	t.Helper()
	s := NewSurface()
	if _, ok := s.Configure(rect.Rect{URx: w, URy: h}, 1); !ok {
		t.Fatal("configure failed")
	}
	return s, NewRenderer(s)
}

func TestDrawPen(t *testing.T) {
	s, r := newTestRenderer(t, 40, 20)
	r.SetBrush(Apply(Pen, 6, 1))
	r.DrawSegment(Point{X: 5, Y: 10}, Point{X: 35, Y: 10})

	bm := s.Bitmap()
	if got := bm.NRGBAAt(20, 10); got != PenColor {
		t.Errorf("center pixel %v, want %v", got, PenColor)
	}
	if got := bm.NRGBAAt(20, 2); got.A != 0 {
		t.Errorf("pixel outside stroke %v", got)
	}

	// anti-aliased edge: partially covered, same color
	edge := bm.NRGBAAt(20, 13)
	edge2 := bm.NRGBAAt(20, 6)
	for _, c := range []color.NRGBA{edge, edge2} {
		if c.A == 0xff {
			continue
		}
		if c.A != 0 && (c.R != PenColor.R || c.G != PenColor.G || c.B != PenColor.B) {
			t.Errorf("edge pixel %v has wrong color", c)
		}
	}
}

func TestDrawRoundCap(t *testing.T) {
	s, r := newTestRenderer(t, 40, 40)
	r.SetBrush(Apply(Pen, 10, 1))
	r.DrawSegment(Point{X: 20, Y: 20}, Point{X: 20, Y: 20})

	bm := s.Bitmap()
	if bm.NRGBAAt(20, 20).A != 0xff {
		t.Error("dot center not inked")
	}
	// the corner of the bounding square lies outside the round dot
	if a := bm.NRGBAAt(15, 15).A; a > 0x40 {
		t.Errorf("dot corner alpha %d", a)
	}
}

// TestDrawRoundJoin checks that consecutive segments meet in a round
// corner, as reported by State.LineJoin.
func TestDrawRoundJoin(t *testing.T) {
	s, r := newTestRenderer(t, 40, 40)
	if s.State().LineJoin != graphics.LineJoinRound {
		t.Fatalf("line join %v", s.State().LineJoin)
	}
	r.SetBrush(Apply(Pen, 10, 1))
	r.DrawSegment(Point{X: 10, Y: 30}, Point{X: 30, Y: 30})
	r.DrawSegment(Point{X: 30, Y: 30}, Point{X: 30, Y: 10})

	bm := s.Bitmap()
	// inside the radius-5 disc around the corner
	if a := bm.NRGBAAt(32, 32).A; a != 0xff {
		t.Errorf("join pixel alpha %d", a)
	}
	// inside a miter, outside the disc
	if a := bm.NRGBAAt(34, 34).A; a != 0 {
		t.Errorf("miter pixel alpha %d", a)
	}
}

func TestEraser(t *testing.T) {
	s, r := newTestRenderer(t, 40, 40)
	r.SetBrush(Apply(Pen, 10, 1))
	r.DrawSegment(Point{X: 0, Y: 20}, Point{X: 40, Y: 20})

	r.SetBrush(Apply(Eraser, 5, 1))
	r.DrawSegment(Point{X: 20, Y: 0}, Point{X: 20, Y: 40})

	bm := s.Bitmap()
	if got := bm.NRGBAAt(20, 20); got != (color.NRGBA{}) {
		t.Errorf("erased pixel %v", got)
	}
	if got := bm.NRGBAAt(5, 20); got != PenColor {
		t.Errorf("pixel outside eraser %v", got)
	}
}

func TestEraseBlank(t *testing.T) {
	s, r := newTestRenderer(t, 20, 20)
	r.SetBrush(Apply(Eraser, 4, 1))
	r.DrawSegment(Point{X: 0, Y: 0}, Point{X: 20, Y: 20})
	for i, v := range s.Bitmap().Pix {
		if v != 0 {
			t.Fatalf("byte %d is %d", i, v)
		}
	}
}

func TestClear(t *testing.T) {
	s, r := newTestRenderer(t, 20, 20)
	r.SetBrush(Apply(Pen, 8, 1))
	r.DrawSegment(Point{X: 2, Y: 2}, Point{X: 18, Y: 18})
	r.Clear()
	for i, v := range s.Bitmap().Pix {
		if v != 0 {
			t.Fatalf("byte %d is %d", i, v)
		}
	}
}

func TestDrawUnconfigured(t *testing.T) {
	s := NewSurface()
	r := NewRenderer(s)
	r.DrawSegment(Point{X: 0, Y: 0}, Point{X: 10, Y: 10})
	if !s.Bitmap().Bounds().Empty() {
		t.Error("unconfigured surface gained pixels")
	}
}

func TestCompositing(t *testing.T) {
	brush := BrushConfig{Mode: ReplaceOver, Color: color.NRGBA{R: 200, A: 0xff}}

	px := []uint8{0, 0, 0, 0}
	replaceOver(px, brush, 1)
	if px[0] != 200 || px[3] != 0xff {
		t.Errorf("full coverage over transparent: %v", px)
	}

	px = []uint8{0, 0, 0, 0}
	replaceOver(px, brush, 0.5)
	if px[0] != 200 || px[3] != 128 {
		t.Errorf("half coverage over transparent: %v", px)
	}

	px = []uint8{0, 0, 100, 0xff}
	replaceOver(px, brush, 0.5)
	if px[0] != 100 || px[2] != 50 || px[3] != 0xff {
		t.Errorf("half coverage over opaque: %v", px)
	}

	px = []uint8{10, 20, 30, 200}
	eraseThrough(px, 0.5)
	if px[3] != 100 || px[0] != 10 {
		t.Errorf("half erase: %v", px)
	}
	eraseThrough(px, 1)
	if px[0]|px[1]|px[2]|px[3] != 0 {
		t.Errorf("full erase: %v", px)
	}
}
