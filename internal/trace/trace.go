// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package trace

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math/rand"
)

// Trace converts a raster image into an SVG document string according
// to the given options. The same image and options always produce the
// same output when deterministic color sampling is selected.
func Trace(img image.Image, opts Options) (string, error) {
	if img == nil {
		return "", errors.New("trace: nil image")
	}
	if opts.NumberOfColors < 2 {
		return "", fmt.Errorf("trace: need at least 2 colors, got %d", opts.NumberOfColors)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.ColorQuantCycles < 1 {
		opts.ColorQuantCycles = 1
	}

	px := rasterize(img)
	if px.w == 0 || px.h == 0 {
		return "", errors.New("trace: empty image")
	}

	if opts.BlurRadius > 0 {
		selectiveBlur(px, opts.BlurRadius, opts.BlurDelta)
	}

	pal := buildPalette(px, opts)
	idx := quantize(px, pal, opts)

	layers := make([][]vecPath, len(pal))
	for k := range pal {
		for _, loop := range scanLayer(idx, k, opts.PathOmit) {
			pts := interpolate(loop, opts.LineFilter)
			layers[k] = append(layers[k], fitLoop(pts, opts.LTres, opts.QTres))
		}
	}

	return buildSVG(px.w, px.h, pal, layers, opts), nil
}

// pixels is a flat non-premultiplied RGBA buffer.
type pixels struct {
	w, h int
	data []uint8 // 4 bytes per pixel
}

func rasterize(img image.Image) *pixels {
	b := img.Bounds()
	px := &pixels{
		w:    b.Dx(),
		h:    b.Dy(),
		data: make([]uint8, b.Dx()*b.Dy()*4),
	}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			px.data[i] = c.R
			px.data[i+1] = c.G
			px.data[i+2] = c.B
			px.data[i+3] = c.A
			i += 4
		}
	}
	return px
}

// selectiveBlur applies a box blur of the given radius, but keeps the
// original value for pixels whose total channel change would exceed
// delta. This smooths photographic noise without softening hard edges.
func selectiveBlur(px *pixels, radius, delta int) {
	if radius > 5 {
		radius = 5
	}
	src := make([]uint8, len(px.data))
	copy(src, px.data)

	at := func(x, y, c int) int {
		if x < 0 {
			x = 0
		} else if x >= px.w {
			x = px.w - 1
		}
		if y < 0 {
			y = 0
		} else if y >= px.h {
			y = px.h - 1
		}
		return int(src[(y*px.w+x)*4+c])
	}

	for y := 0; y < px.h; y++ {
		for x := 0; x < px.w; x++ {
			var sum [4]int
			n := 0
			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					for c := 0; c < 4; c++ {
						sum[c] += at(x+dx, y+dy, c)
					}
					n++
				}
			}
			diff := 0
			var out [4]uint8
			for c := 0; c < 4; c++ {
				v := sum[c] / n
				out[c] = uint8(v)
				d := v - at(x, y, c)
				if d < 0 {
					d = -d
				}
				diff += d
			}
			if diff <= delta {
				o := (y*px.w + x) * 4
				px.data[o] = out[0]
				px.data[o+1] = out[1]
				px.data[o+2] = out[2]
				px.data[o+3] = out[3]
			}
		}
	}
}

// buildPalette creates the initial palette seeds according to the
// configured sampling mode.
func buildPalette(px *pixels, opts Options) [][4]int {
	n := opts.NumberOfColors
	pal := make([][4]int, n)

	switch opts.ColorSampling {
	case SamplingGenerated:
		// Grayscale ramp, no pixel reads.
		for i := 0; i < n; i++ {
			v := i * 255 / (n - 1)
			pal[i] = [4]int{v, v, v, 255}
		}
	case SamplingRandom:
		total := px.w * px.h
		for i := 0; i < n; i++ {
			pal[i] = pixelAt(px, rand.Intn(total))
		}
	default: // SamplingDeterministic
		total := px.w * px.h
		for i := 0; i < n; i++ {
			// Evenly spaced sample positions across the raster.
			pos := (i*2 + 1) * total / (n * 2)
			pal[i] = pixelAt(px, pos)
		}
	}
	return pal
}

func pixelAt(px *pixels, pos int) [4]int {
	o := pos * 4
	return [4]int{int(px.data[o]), int(px.data[o+1]), int(px.data[o+2]), int(px.data[o+3])}
}

// quantize assigns every pixel to its nearest palette color over the
// configured number of cycles, refining the palette between cycles by
// averaging the pixels assigned to each entry. It returns the indexed
// image with a one-cell border of -1 around the edges, which the layer
// scan relies on to close boundaries at the image edge.
func quantize(px *pixels, pal [][4]int, opts Options) [][]int {
	w, h := px.w, px.h
	idx := make([][]int, h+2)
	for j := range idx {
		idx[j] = make([]int, w+2)
		for i := range idx[j] {
			idx[j][i] = -1
		}
	}

	type acc struct {
		r, g, b, a, n int
	}

	for cycle := 0; cycle < opts.ColorQuantCycles; cycle++ {
		accs := make([]acc, len(pal))

		o := 0
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r := int(px.data[o])
				g := int(px.data[o+1])
				bl := int(px.data[o+2])
				al := int(px.data[o+3])
				o += 4

				best := 0
				bestDist := 1 << 30
				for k, p := range pal {
					d := absInt(p[0]-r) + absInt(p[1]-g) + absInt(p[2]-bl) + absInt(p[3]-al)
					if d < bestDist {
						bestDist = d
						best = k
					}
				}

				accs[best].r += r
				accs[best].g += g
				accs[best].b += bl
				accs[best].a += al
				accs[best].n++
				idx[y+1][x+1] = best
			}
		}

		// Last cycle: the palette must stay consistent with the final
		// assignment, so skip refinement.
		if cycle == opts.ColorQuantCycles-1 {
			break
		}

		total := w * h
		for k := range pal {
			a := accs[k]
			if a.n > 0 && float64(a.n)/float64(total) >= opts.MinColorRatio {
				pal[k] = [4]int{a.r / a.n, a.g / a.n, a.b / a.n, a.a / a.n}
				continue
			}
			if a.n > 0 {
				// Under-used entry: re-seed from a deterministic pixel so
				// repeated runs stay reproducible.
				pal[k] = pixelAt(px, (k*2654435761)%total)
			}
		}
	}

	return idx
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ipoint is a lattice point on the pixel-corner grid.
type ipoint struct {
	x, y int
}

type edge struct {
	from, to ipoint
}

// scanLayer extracts the boundary loops of color region k from the
// indexed image. Each boundary is the chain of unit edges between a
// pixel of color k and a neighbor of any other color; the -1 border
// guarantees loops close at the image edge. Loops shorter than pathOmit
// points are discarded as quantization noise. Holes appear as their own
// loops and are rendered with an even-odd fill rule.
func scanLayer(idx [][]int, k, pathOmit int) [][]ipoint {
	h := len(idx) - 2
	w := len(idx[0]) - 2

	at := func(x, y int) bool {
		return idx[y+1][x+1] == k
	}

	// Collect directed boundary edges in deterministic scan order.
	var edges []edge
	out := make(map[ipoint][]int) // node -> indices into edges
	addEdge := func(fx, fy, tx, ty int) {
		e := edge{ipoint{fx, fy}, ipoint{tx, ty}}
		out[e.from] = append(out[e.from], len(edges))
		edges = append(edges, e)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !at(x, y) {
				continue
			}
			if !at(x, y-1) {
				addEdge(x, y, x+1, y)
			}
			if !at(x+1, y) {
				addEdge(x+1, y, x+1, y+1)
			}
			if !at(x, y+1) {
				addEdge(x+1, y+1, x, y+1)
			}
			if !at(x-1, y) {
				addEdge(x, y+1, x, y)
			}
		}
	}

	// Chain edges into closed loops. Every node has equal in- and
	// out-degree, so following unused outgoing edges always returns to
	// the loop's starting node.
	used := make([]bool, len(edges))
	var loops [][]ipoint

	for i := range edges {
		if used[i] {
			continue
		}
		start := edges[i].from
		loop := []ipoint{start}
		cur := i
		for {
			used[cur] = true
			next := edges[cur].to
			if next == start {
				break
			}
			loop = append(loop, next)

			found := -1
			for _, cand := range out[next] {
				if !used[cand] {
					found = cand
					break
				}
			}
			if found == -1 {
				// Should not happen on a well-formed boundary; drop the
				// partial loop rather than loop forever.
				loop = nil
				break
			}
			cur = found
		}
		if len(loop) >= pathOmit && len(loop) >= 3 {
			loops = append(loops, loop)
		}
	}

	return loops
}

// point is a fractional coordinate in pixel space.
type point struct {
	x, y float64
}

// interpolate replaces each boundary point with the midpoint of its
// outgoing edge, smoothing the staircase of the lattice walk. With
// lineFilter enabled, midpoints collinear with both neighbors are
// dropped so long straight runs fit as single segments.
func interpolate(loop []ipoint, lineFilter bool) []point {
	n := len(loop)
	pts := make([]point, n)
	for i := 0; i < n; i++ {
		a := loop[i]
		b := loop[(i+1)%n]
		pts[i] = point{
			x: (float64(a.x) + float64(b.x)) / 2,
			y: (float64(a.y) + float64(b.y)) / 2,
		}
	}

	if !lineFilter || n < 4 {
		return pts
	}

	filtered := make([]point, 0, n)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		if pointDir(prev, pts[i]) == pointDir(pts[i], next) && n-len(filtered) > 3 {
			// Collinear with both neighbors — and skipping it still
			// leaves enough points for a closed path.
			continue
		}
		filtered = append(filtered, pts[i])
	}
	if len(filtered) >= 3 {
		return filtered
	}
	return pts
}

// pointDir returns a compass code for the direction from a to b, using
// only the signs of the deltas. Nine values cover the eight directions
// plus "no movement".
func pointDir(a, b point) int {
	dx, dy := 0, 0
	if b.x > a.x {
		dx = 1
	} else if b.x < a.x {
		dx = -1
	}
	if b.y > a.y {
		dy = 1
	} else if b.y < a.y {
		dy = -1
	}
	return (dx+1)*3 + (dy + 1)
}

// segment is one piece of a fitted path: a straight line to (X, Y) or a
// quadratic spline through control point (CX, CY) to (X, Y).
type segment struct {
	op     byte // 'L' or 'Q'
	cx, cy float64
	x, y   float64
}

// vecPath is one closed fitted loop.
type vecPath struct {
	start point
	segs  []segment
}

// fitLoop fits a closed point sequence with line and quadratic spline
// segments using recursive splitting at the worst-error point. The loop
// is first cut into monotone runs wherever the walk direction changes:
// a corner between two straight edges is then always a run boundary,
// never an interior point a spline candidate could pass through while
// bulging outside the region.
func fitLoop(pts []point, ltres, qtres float64) vecPath {
	n := len(pts)

	// Rotate the loop to start at a direction change so no run
	// straddles the seam.
	rot := 0
	for i := 0; i < n; i++ {
		if pointDir(pts[(i-1+n)%n], pts[i]) != pointDir(pts[i], pts[(i+1)%n]) {
			rot = i
			break
		}
	}
	if rot > 0 {
		rotated := make([]point, 0, n)
		rotated = append(rotated, pts[rot:]...)
		rotated = append(rotated, pts[:rot]...)
		pts = rotated
	}

	seq := make([]point, n+1)
	copy(seq, pts)
	seq[n] = pts[0] // close the loop

	p := vecPath{start: pts[0]}
	runStart := 0
	for i := 1; i < n; i++ {
		if pointDir(seq[i-1], seq[i]) != pointDir(seq[i], seq[i+1]) {
			fitSeq(seq, runStart, i, ltres, qtres, &p.segs)
			runStart = i
		}
	}
	fitSeq(seq, runStart, n, ltres, qtres, &p.segs)
	return p
}

// fitSeq fits seq[start..end] and appends the resulting segments.
// Errors are compared as squared distances against the thresholds.
func fitSeq(seq []point, start, end int, ltres, qtres float64, out *[]segment) {
	if end-start < 2 {
		*out = append(*out, segment{op: 'L', x: seq[end].x, y: seq[end].y})
		return
	}

	n := float64(end - start)
	s, e := seq[start], seq[end]

	// Straight-line candidate: walk the chord and find the point with
	// the largest squared deviation.
	vx := (e.x - s.x) / n
	vy := (e.y - s.y) / n
	errIdx := start + 1
	maxErr := 0.0
	for i := start + 1; i < end; i++ {
		t := float64(i - start)
		dx := seq[i].x - (s.x + vx*t)
		dy := seq[i].y - (s.y + vy*t)
		d := dx*dx + dy*dy
		if d > maxErr {
			maxErr = d
			errIdx = i
		}
	}
	if maxErr < ltres {
		*out = append(*out, segment{op: 'L', x: e.x, y: e.y})
		return
	}

	// Quadratic candidate: place the control point so the curve passes
	// through the worst point of the line fit at its parameter value.
	fit := errIdx
	t := float64(fit-start) / n
	if t <= 0 || t >= 1 {
		t = 0.5
	}
	den := 2 * t * (1 - t)
	cx := (seq[fit].x - (1-t)*(1-t)*s.x - t*t*e.x) / den
	cy := (seq[fit].y - (1-t)*(1-t)*s.y - t*t*e.y) / den

	errIdx = start + 1
	maxErr = 0.0
	for i := start + 1; i < end; i++ {
		ti := float64(i-start) / n
		mt := 1 - ti
		bx := mt*mt*s.x + 2*ti*mt*cx + ti*ti*e.x
		by := mt*mt*s.y + 2*ti*mt*cy + ti*ti*e.y
		dx := seq[i].x - bx
		dy := seq[i].y - by
		d := dx*dx + dy*dy
		if d > maxErr {
			maxErr = d
			errIdx = i
		}
	}
	if maxErr < qtres {
		*out = append(*out, segment{op: 'Q', cx: cx, cy: cy, x: e.x, y: e.y})
		return
	}

	// Split at the worst point and fit both halves.
	split := errIdx
	if split <= start {
		split = start + 1
	}
	if split >= end {
		split = end - 1
	}
	fitSeq(seq, start, split, ltres, qtres, out)
	fitSeq(seq, split, end, ltres, qtres, out)
}
