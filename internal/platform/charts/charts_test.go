package charts

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestBarPNG(t *testing.T) {
	var buf bytes.Buffer
	bars := []Bar{{Label: "Toy", Value: 5}, {Label: "Hound", Value: 3}, {Label: "Unknown", Value: 1}}

	if err := BarPNG(&buf, bars, Options{Title: "Breeds per Group", Width: 640, Height: 320}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 320 {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestBarPNG_SingleBar(t *testing.T) {
	var buf bytes.Buffer
	if err := BarPNG(&buf, []Bar{{Label: "Toy", Value: 1}}, Options{}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatalf("expected png signature")
	}
}

func TestScatterPNG(t *testing.T) {
	var buf bytes.Buffer
	pts := []Point{{X: 27.5, Y: 51}, {X: 7, Y: 25}, {X: 4.5, Y: 26}}

	if err := ScatterPNG(&buf, "Breeds", pts, Options{Title: "Height vs Weight", XName: "Weight (kg)", YName: "Height (cm)"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("invalid png: %v", err)
	}
	if b := img.Bounds(); b.Dx() != DefaultWidth || b.Dy() != DefaultHeight {
		t.Fatalf("unexpected size %v", b)
	}
}

func TestNoData(t *testing.T) {
	var buf bytes.Buffer
	if err := BarPNG(&buf, nil, Options{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for bars, got %v", err)
	}
	if err := ScatterPNG(&buf, "x", []Point{{X: 1, Y: 1}}, Options{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData for a single point, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing must be written on ErrNoData")
	}
}

func TestBarWidth(t *testing.T) {
	if got := barWidth(800, 1); got != 60 {
		t.Fatalf("expected cap 60, got %d", got)
	}
	if got := barWidth(200, 10); got != 10 {
		t.Fatalf("expected floor 10, got %d", got)
	}
	if got := barWidth(800, 10); got != 36 {
		t.Fatalf("expected 36, got %d", got)
	}
}

func TestScatterPNG_SameX(t *testing.T) {
	cases := map[string][]Point{
		"same x":    {{X: 7, Y: 25}, {X: 7, Y: 30}},
		"identical": {{X: 7, Y: 25}, {X: 7, Y: 25}},
		"same y":    {{X: 5, Y: 25}, {X: 9, Y: 25}},
	}
	for name, pts := range cases {
		var buf bytes.Buffer
		if err := ScatterPNG(&buf, "Breeds", pts, Options{}); err != nil {
			t.Fatalf("%s: unexpected err: %v", name, err)
		}
		if _, err := png.Decode(&buf); err != nil {
			t.Fatalf("%s: invalid png: %v", name, err)
		}
	}
}

func TestFlatRange(t *testing.T) {
	if r := flatRange([]float64{1, 2}); r != nil {
		t.Fatalf("expected nil for a non-flat range, got %+v", r)
	}
	r := flatRange([]float64{7, 7, 7})
	if r == nil || r.Min != 6 || r.Max != 8 {
		t.Fatalf("expected 6..8, got %+v", r)
	}
}
