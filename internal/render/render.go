// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the admin panel and
// the public site. Admin pages support full-page and HTMX partial rendering,
// automatically detecting the request type via the HX-Request header. Public
// pages render to a byte slice so handlers can store them in the page cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"kursportal/internal/middleware"
	"kursportal/internal/models"
	"kursportal/internal/session"
)

//go:embed templates/admin/*.html templates/site/*.html
var templateFS embed.FS

// PageData holds all data passed to admin templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	Section   string         // Active sidebar section (e.g., "dashboard", "courses")
	Session   *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken string         // CSRF token for forms and HTMX headers
	Data      map[string]any // Page-specific data
	Flashes   []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// SiteData holds all data passed to public site templates.
type SiteData struct {
	Title     string              // Page title for <title> tag
	Section   string              // Active nav section (e.g., "home", "courses", "archive")
	Settings  models.SiteSettings // Site-wide settings (contact info, footer text)
	CSRFToken string              // CSRF token, only used on pages with forms
	Data      map[string]any      // Page-specific data
}

// Renderer handles template parsing and execution for admin and site pages.
type Renderer struct {
	admin   map[string]*template.Template
	site    map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. Each page template is paired with its section's base layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS, HTMX);
// when false, they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		admin: make(map[string]*template.Template),
		site:  make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-gray-900 text-white"
				}
				return "text-gray-300 hover:bg-gray-700 hover:text-white"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// dato formats a time in the Norwegian day.month.year style.
			"dato": func(t time.Time) string {
				return t.Format("02.01.2006")
			},
			// datoPtr formats an optional time, returning "" when nil.
			"datoPtr": func(t *time.Time) string {
				if t == nil {
					return ""
				}
				return t.Format("02.01.2006")
			},
			// langLabel maps a language code to its Norwegian display label.
			"langLabel": func(code string) string {
				if l, ok := models.LanguageLabels[code]; ok {
					return l
				}
				return code
			},
			// uuidEq compares a *uuid.UUID pointer with a uuid.UUID value.
			"uuidEq": func(ptr *uuid.UUID, val uuid.UUID) bool {
				return ptr != nil && *ptr == val
			},
			// svg marks category icon markup as trusted HTML. Icon SVGs are
			// produced by the tracer, never by site visitors.
			"svg": func(s *string) template.HTML {
				if s == nil {
					return ""
				}
				return template.HTML(*s)
			},
			// seq supports range-based repetition (e.g. rating stars).
			"seq": func(n int) []struct{} {
				if n < 0 {
					n = 0
				}
				return make([]struct{}, n)
			},
			"year": func() int {
				return time.Now().Year()
			},
		},
	}

	if err := r.parseSet("admin", r.admin); err != nil {
		return nil, err
	}
	if err := r.parseSet("site", r.site); err != nil {
		return nil, err
	}

	return r, nil
}

// parseSet parses all page templates in templates/<dir>, pairing each with
// that directory's base.html (except admin standalone templates).
func (rn *Renderer) parseSet(dir string, dst map[string]*template.Template) error {
	entries, err := templateFS.ReadDir("templates/" + dir)
	if err != nil {
		return fmt.Errorf("read embedded templates %s: %w", dir, err)
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == "base.html" {
			continue
		}

		tmplName := name[:len(name)-len(filepath.Ext(name))]

		var tmpl *template.Template
		var parseErr error

		if dir == "admin" && standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(rn.funcMap).ParseFS(
				templateFS, "templates/admin/"+name,
			)
		} else {
			tmpl, parseErr = template.New("base.html").Funcs(rn.funcMap).ParseFS(
				templateFS, "templates/"+dir+"/base.html", "templates/"+dir+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s/%s: %w", dir, name, parseErr)
		}

		dst[tmplName] = tmpl
	}

	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	// Full page request: render the complete layout.
	execName := "base.html"
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// SitePage renders a public page to a byte slice so callers can both write
// it to the response and store it in the page cache.
func (rn *Renderer) SitePage(name string, data *SiteData) ([]byte, error) {
	tmpl, ok := rn.site[name]
	if !ok {
		return nil, fmt.Errorf("site template %q not found", name)
	}

	var buf bytes.Buffer
	if err := executeTemplate(&buf, tmpl, "base.html", data); err != nil {
		return nil, fmt.Errorf("render site page %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
