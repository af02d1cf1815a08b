// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown renders the constrained markdown subset used for
// legal pages: blank-line separated blocks, headings of level 1-3,
// bold spans, links, and line breaks. Nothing else. Input is
// admin-authored, so raw HTML passes through unescaped.
package markdown

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
)

var (
	boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)
	linkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Render converts a legal-page body into HTML. The result is trusted
// markup, matching how the content is authored.
func Render(src string) template.HTML {
	blocks := strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n\n")

	var b strings.Builder
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		if level, text, ok := heading(block); ok {
			fmt.Fprintf(&b, "<h%d>%s</h%d>\n", level, inline(text), level)
			continue
		}

		b.WriteString("<p>")
		b.WriteString(inline(block))
		b.WriteString("</p>\n")
	}
	return template.HTML(b.String())
}

// heading matches a block starting with 1-3 hash marks and a space.
func heading(block string) (level int, text string, ok bool) {
	for level = 3; level >= 1; level-- {
		prefix := strings.Repeat("#", level) + " "
		if strings.HasPrefix(block, prefix) {
			return level, strings.TrimSpace(block[len(prefix):]), true
		}
	}
	return 0, "", false
}

// inline applies bold, link, and line-break conversion to a block body.
func inline(text string) string {
	text = boldRe.ReplaceAllString(text, "<strong>$1</strong>")
	text = linkRe.ReplaceAllString(text, `<a href="$2">$1</a>`)
	return strings.ReplaceAll(text, "\n", "<br />")
}
