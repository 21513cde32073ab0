package platform

import "testing"

func TestRectDegenerate(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"zero", Rect{}, true},
		{"no width", Rect{X: 10, Y: 10, Height: 100}, true},
		{"negative height", Rect{X: 10, Y: 10, Width: 100, Height: -1}, true},
		{"right edge at zero", Rect{X: -200, Y: 10, Width: 200, Height: 100}, true},
		{"bottom edge at zero", Rect{X: 10, Y: -100, Width: 200, Height: 100}, true},
		{"usable", Rect{X: 100, Y: 100, Width: 1024, Height: 768}, false},
		{"negative origin", Rect{X: -1920, Y: 0, Width: 1280, Height: 720}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Degenerate(); got != tt.want {
				t.Fatalf("Degenerate(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectFromEdges(t *testing.T) {
	r := RectFromEdges(100, 100, 1124, 868)
	if r != (Rect{X: 100, Y: 100, Width: 1024, Height: 768}) {
		t.Fatalf("RectFromEdges = %+v", r)
	}
	if r.Right() != 1124 || r.Bottom() != 868 {
		t.Fatalf("edges = %d,%d", r.Right(), r.Bottom())
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 50, Y: 60, Width: 100, Height: 100}
	if got := a.Intersect(b); got != (Rect{X: 50, Y: 60, Width: 50, Height: 40}) {
		t.Fatalf("Intersect = %+v", got)
	}
	c := Rect{X: 100, Y: 0, Width: 10, Height: 10}
	if got := a.Intersect(c); got != (Rect{}) {
		t.Fatalf("touching rects intersect as %+v", got)
	}
}

func TestNearestDisplay(t *testing.T) {
	left := Display{ID: 0, Name: "left", Bounds: Rect{X: 0, Y: 0, Width: 1920, Height: 1080}}
	right := Display{ID: 1, Name: "right", Bounds: Rect{X: 1920, Y: 0, Width: 2560, Height: 1440}}
	displays := []Display{left, right}

	tests := []struct {
		name string
		win  Rect
		want string
	}{
		{"centre on left", Rect{X: 100, Y: 100, Width: 800, Height: 600}, "left"},
		{"centre on right", Rect{X: 1800, Y: 100, Width: 800, Height: 600}, "right"},
		{"centre off-screen, overlaps right", Rect{X: 3000, Y: 1200, Width: 1000, Height: 800}, "right"},
		{"entirely off-screen", Rect{X: -5000, Y: -5000, Width: 10, Height: 10}, "left"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NearestDisplay(displays, tt.win)
			if !ok {
				t.Fatal("NearestDisplay returned !ok")
			}
			if got.Name != tt.want {
				t.Fatalf("NearestDisplay = %q, want %q", got.Name, tt.want)
			}
		})
	}

	if _, ok := NearestDisplay(nil, Rect{}); ok {
		t.Fatal("NearestDisplay(nil) ok = true")
	}
}
