// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package trace converts raster images into SVG approximations. It
// quantizes the image to a small palette, extracts the boundary of each
// color region, fits the boundaries with line and quadratic spline
// segments, and emits the result as an SVG document of filled paths.
//
// The output is suitable for flat, few-color artwork such as icons: the
// vector form can be tinted at display time without re-uploading.
package trace

// Color sampling modes for palette generation.
const (
	// SamplingGenerated builds a gradient palette without reading pixels.
	SamplingGenerated = 0
	// SamplingRandom samples palette seeds from random pixels.
	SamplingRandom = 1
	// SamplingDeterministic samples palette seeds from evenly spaced
	// pixels, so identical input always yields identical output.
	SamplingDeterministic = 2
)

// Options controls quantization, path fitting, and SVG output.
type Options struct {
	// NumberOfColors is the palette size target.
	NumberOfColors int
	// ColorSampling selects how palette seeds are chosen.
	ColorSampling int
	// ColorQuantCycles is the number of quantization refinement passes.
	ColorQuantCycles int
	// MinColorRatio re-seeds palette entries used by fewer than this
	// fraction of pixels between cycles.
	MinColorRatio float64

	// LTres is the maximum per-point error for a straight-line fit.
	LTres float64
	// QTres is the maximum per-point error for a quadratic spline fit.
	QTres float64
	// PathOmit discards boundary loops with fewer points than this,
	// removing quantization noise.
	PathOmit int
	// LineFilter drops collinear interpolation points before fitting,
	// collapsing near-linear runs into single segments.
	LineFilter bool

	// BlurRadius applies a pre-smoothing box blur when positive.
	BlurRadius int
	// BlurDelta gates the blur: pixels that would change by more than
	// this total channel difference keep their original value.
	BlurDelta int

	// StrokeWidth is the stroke width written on every path.
	StrokeWidth float64
	// Scale multiplies all output coordinates.
	Scale float64
	// RoundCoords is the number of decimal places for coordinates.
	// Negative means no rounding.
	RoundCoords int
	// ViewBox adds a viewBox declaration to the root element.
	ViewBox bool
	// Desc adds a desc metadata element to the document.
	Desc bool
}

// DefaultOptions returns general-purpose tracing parameters.
func DefaultOptions() Options {
	return Options{
		NumberOfColors:   16,
		ColorSampling:    SamplingDeterministic,
		ColorQuantCycles: 3,
		MinColorRatio:    0,
		LTres:            1,
		QTres:            1,
		PathOmit:         8,
		LineFilter:       false,
		BlurRadius:       0,
		BlurDelta:        20,
		StrokeWidth:      1,
		Scale:            1,
		RoundCoords:      1,
		ViewBox:          false,
		Desc:             true,
	}
}

// IconProfile returns the fixed parameter profile used for category
// icons: few colors, deterministic sampling, tight fit tolerances to
// preserve small detail, no pre-smoothing, filled regions without
// strokes, and a viewBox so the result scales cleanly.
func IconProfile() Options {
	return Options{
		NumberOfColors:   4,
		ColorSampling:    SamplingDeterministic,
		ColorQuantCycles: 3,
		MinColorRatio:    0,
		LTres:            1,
		QTres:            1,
		PathOmit:         8,
		LineFilter:       true,
		BlurRadius:       0,
		BlurDelta:        20,
		StrokeWidth:      0,
		Scale:            1,
		RoundCoords:      2,
		ViewBox:          true,
		Desc:             false,
	}
}
