// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestRenderHeadingAndParagraph(t *testing.T) {
	src := "## Vilkår\n\nDette er **viktig** og du finner mer på [siden](https://example.com)."
	got := string(Render(src))

	if !strings.Contains(got, "<h2>Vilkår</h2>") {
		t.Errorf("missing level-2 heading in %q", got)
	}
	if !strings.Contains(got, "<strong>viktig</strong>") {
		t.Errorf("missing bold span in %q", got)
	}
	if !strings.Contains(got, `<a href="https://example.com">siden</a>`) {
		t.Errorf("missing link in %q", got)
	}
	if strings.Count(got, "<p>") != 1 {
		t.Errorf("want exactly one paragraph in %q", got)
	}
}

func TestRenderHeadingLevels(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"# Tittel", "<h1>Tittel</h1>"},
		{"## Undertittel", "<h2>Undertittel</h2>"},
		{"### Avsnitt", "<h3>Avsnitt</h3>"},
	}
	for _, c := range cases {
		if got := string(Render(c.src)); !strings.Contains(got, c.want) {
			t.Errorf("Render(%q) = %q, want it to contain %q", c.src, got, c.want)
		}
	}

	// Four hashes is not a heading level we support.
	if got := string(Render("#### Dypt")); !strings.Contains(got, "<p>#### Dypt</p>") {
		t.Errorf("four hashes must render as a paragraph, got %q", got)
	}
}

func TestRenderLineBreaks(t *testing.T) {
	got := string(Render("Linje en\nLinje to"))
	if !strings.Contains(got, "Linje en<br />Linje to") {
		t.Errorf("single newline must become a line break, got %q", got)
	}
}

func TestRenderMultipleBlocks(t *testing.T) {
	got := string(Render("# Personvern\n\nFørste avsnitt.\n\nAndre avsnitt."))
	if strings.Count(got, "<p>") != 2 {
		t.Errorf("want two paragraphs, got %q", got)
	}
	if !strings.Contains(got, "<h1>Personvern</h1>") {
		t.Errorf("missing heading, got %q", got)
	}
}

func TestRenderPassesRawHTML(t *testing.T) {
	// Legal-page content is admin-authored and trusted as-is.
	got := string(Render("Se <em>kursplanen</em> her."))
	if !strings.Contains(got, "<em>kursplanen</em>") {
		t.Errorf("raw markup must pass through, got %q", got)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if got := string(Render("")); got != "" {
		t.Errorf("empty input must render nothing, got %q", got)
	}
	if got := string(Render("\n\n\n")); got != "" {
		t.Errorf("blank input must render nothing, got %q", got)
	}
}
