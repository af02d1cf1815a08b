// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package trace

import (
	"fmt"
	"strconv"
	"strings"
)

// buildSVG assembles the final document. Each palette color becomes one
// path element holding all of its boundary loops; the even-odd fill
// rule turns inner loops into holes without explicit bookkeeping.
func buildSVG(w, h int, pal [][4]int, layers [][]vecPath, opts Options) string {
	width := float64(w) * opts.Scale
	height := float64(h) * opts.Scale

	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1"`)
	fmt.Fprintf(&b, ` width="%s" height="%s"`, coordStr(width, opts.RoundCoords), coordStr(height, opts.RoundCoords))
	if opts.ViewBox {
		fmt.Fprintf(&b, ` viewBox="0 0 %s %s"`, coordStr(width, opts.RoundCoords), coordStr(height, opts.RoundCoords))
	}
	b.WriteString(">")
	if opts.Desc {
		b.WriteString("<desc>Traced vector image</desc>")
	}

	for k, paths := range layers {
		if len(paths) == 0 {
			continue
		}
		c := pal[k]
		fill := fmt.Sprintf("rgb(%d,%d,%d)", c[0], c[1], c[2])

		fmt.Fprintf(&b, `<path fill="%s" stroke="%s" stroke-width="%s" fill-rule="evenodd"`,
			fill, fill, coordStr(opts.StrokeWidth, opts.RoundCoords))
		if c[3] < 255 {
			fmt.Fprintf(&b, ` fill-opacity="%s"`, coordStr(float64(c[3])/255, 3))
		}
		b.WriteString(` d="`)
		for _, p := range paths {
			writePathData(&b, p, opts)
		}
		b.WriteString(`"/>`)
	}

	b.WriteString("</svg>")
	return b.String()
}

func writePathData(b *strings.Builder, p vecPath, opts Options) {
	c := func(v float64) string {
		return coordStr(v*opts.Scale, opts.RoundCoords)
	}

	fmt.Fprintf(b, "M %s %s ", c(p.start.x), c(p.start.y))
	for _, s := range p.segs {
		if s.op == 'Q' {
			fmt.Fprintf(b, "Q %s %s %s %s ", c(s.cx), c(s.cy), c(s.x), c(s.y))
		} else {
			fmt.Fprintf(b, "L %s %s ", c(s.x), c(s.y))
		}
	}
	b.WriteString("Z ")
}

// coordStr formats a coordinate rounded to the given number of decimal
// places, trimming trailing zeros. A negative place count disables
// rounding.
func coordStr(v float64, places int) string {
	if places < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', places, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}
