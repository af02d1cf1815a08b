// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package trace

import (
	"image"
	"image/color"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// halfRedImage returns a 10x10 image whose left half is red and right
// half is white. Deterministic palette sampling lands on both colors.
func halfRedImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if x < 5 {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, white)
			}
		}
	}
	return img
}

func TestTraceDeterministic(t *testing.T) {
	img := halfRedImage()
	first, err := Trace(img, IconProfile())
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	second, err := Trace(img, IconProfile())
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if first != second {
		t.Error("same image and options produced different output")
	}
}

func TestTraceIconProfileOutput(t *testing.T) {
	svg, err := Trace(halfRedImage(), IconProfile())
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %q", svg)
	}
	if !strings.Contains(svg, `viewBox="0 0 10 10"`) {
		t.Errorf("missing viewBox: %s", svg)
	}
	if strings.Contains(svg, "<desc") {
		t.Error("icon profile must omit the desc element")
	}
	if !strings.Contains(svg, `stroke-width="0"`) {
		t.Error("icon profile paths must have stroke width 0")
	}
	if !strings.Contains(svg, "rgb(255,0,0)") {
		t.Error("red region missing from output")
	}
	if !strings.Contains(svg, "rgb(255,255,255)") {
		t.Error("white region missing from output")
	}
	if !strings.Contains(svg, `fill-rule="evenodd"`) {
		t.Error("paths must use the even-odd fill rule")
	}
}

func TestTraceRoundsCoordinates(t *testing.T) {
	svg, err := Trace(halfRedImage(), IconProfile())
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	// RoundCoords 2: no coordinate may carry more than two decimals.
	tooPrecise := regexp.MustCompile(`\d\.\d{3,}`)
	if m := tooPrecise.FindString(svg); m != "" {
		t.Errorf("coordinate with more than 2 decimals: %q", m)
	}
}

func TestTraceScale(t *testing.T) {
	opts := IconProfile()
	opts.Scale = 2
	svg, err := Trace(halfRedImage(), opts)
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(svg, `viewBox="0 0 20 20"`) {
		t.Errorf("scale 2 should double the view box: %s", svg)
	}
}

func TestTracePathOmit(t *testing.T) {
	// Left half red plus a single red speck in the white half. The
	// speck's boundary has 4 points and must be dropped at pathomit 8.
	img := halfRedImage()
	img.SetNRGBA(7, 2, red)

	redLoops := func(pathOmit int) int {
		opts := IconProfile()
		opts.PathOmit = pathOmit
		svg, err := Trace(img, opts)
		if err != nil {
			t.Fatalf("trace: %v", err)
		}
		start := strings.Index(svg, `fill="rgb(255,0,0)"`)
		if start == -1 {
			t.Fatalf("no red path in output: %s", svg)
		}
		rest := svg[start:]
		end := strings.Index(rest, `"/>`)
		return strings.Count(rest[:end], "M ")
	}

	if got := redLoops(8); got != 1 {
		t.Errorf("pathomit 8: want 1 red loop, got %d", got)
	}
	if got := redLoops(0); got != 2 {
		t.Errorf("pathomit 0: want 2 red loops, got %d", got)
	}
}

func TestTraceSolidImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, red)
		}
	}

	svg, err := Trace(img, IconProfile())
	if err != nil {
		t.Fatalf("trace: %v", err)
	}
	if !strings.Contains(svg, "rgb(255,0,0)") {
		t.Error("solid color missing from output")
	}
	// A single solid region traces to exactly one path element.
	if got := strings.Count(svg, "<path"); got != 1 {
		t.Errorf("want 1 path element, got %d", got)
	}
}

func TestTraceSquareEdgesStayStraight(t *testing.T) {
	// An 8x8 solid square on a 16x16 canvas. Every boundary in the
	// image is an axis-aligned rectangle, so the output must consist of
	// straight segments only; a spline here would place its control
	// point outside the region and bulge the edge.
	img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if x >= 4 && x < 12 && y >= 4 && y < 12 {
				img.SetNRGBA(x, y, red)
			} else {
				img.SetNRGBA(x, y, white)
			}
		}
	}

	svg, err := Trace(img, IconProfile())
	if err != nil {
		t.Fatalf("trace: %v", err)
	}

	if strings.Contains(svg, "Q ") {
		t.Errorf("rectangular regions traced with spline segments: %s", svg)
	}

	// No path coordinate may leave the canvas.
	pathData := regexp.MustCompile(`d="([^"]+)"`)
	number := regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	for _, m := range pathData.FindAllStringSubmatch(svg, -1) {
		for _, cs := range number.FindAllString(m[1], -1) {
			v, err := strconv.ParseFloat(cs, 64)
			if err != nil {
				t.Fatalf("parse coordinate %q: %v", cs, err)
			}
			if v < 0 || v > 16 {
				t.Errorf("coordinate %s outside the 16x16 canvas in %q", cs, m[1])
			}
		}
	}
}

func TestTraceRejectsBadInput(t *testing.T) {
	if _, err := Trace(nil, IconProfile()); err == nil {
		t.Error("nil image must be rejected")
	}

	opts := IconProfile()
	opts.NumberOfColors = 1
	if _, err := Trace(halfRedImage(), opts); err == nil {
		t.Error("palette of one color must be rejected")
	}

	if _, err := Trace(image.NewNRGBA(image.Rect(0, 0, 0, 0)), IconProfile()); err == nil {
		t.Error("empty image must be rejected")
	}
}

func TestCoordStr(t *testing.T) {
	cases := []struct {
		v      float64
		places int
		want   string
	}{
		{10, 2, "10"},
		{1.5, 2, "1.5"},
		{1.555, 2, "1.56"},
		{0.125, 2, "0.13"},
		{3, 0, "3"},
	}
	for _, c := range cases {
		if got := coordStr(c.v, c.places); got != c.want {
			t.Errorf("coordStr(%v, %d) = %q, want %q", c.v, c.places, got, c.want)
		}
	}
}
