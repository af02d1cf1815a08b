// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"kursportal/internal/models"
	"kursportal/internal/session"
)

func testSession() *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@kursportal.local",
		DisplayName: "Test Testesen",
		Role:        "admin",
		TwoFADone:   true,
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
	}{
		{"dev mode", true},
		{"prod mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.devMode)
			if err != nil {
				t.Fatalf("New(%v): %v", tt.devMode, err)
			}
			if len(r.admin) == 0 {
				t.Error("no admin templates parsed")
			}
			if len(r.site) == 0 {
				t.Error("no site templates parsed")
			}
		})
	}
}

func TestPageFullLayout(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/faqs", nil)
	rr := httptest.NewRecorder()

	r.Page(rr, req, "faqs_list", &PageData{
		Title:   "FAQ",
		Section: "faqs",
		Session: testSession(),
		Data:    map[string]any{"Items": nil},
	})

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type: got %q", ct)
	}

	body := rr.Body.String()
	if !strings.Contains(body, "<html") {
		t.Error("full page should include the html element")
	}
	if !strings.Contains(body, "Test Testesen") {
		t.Error("full page should show the signed-in user")
	}
	if !strings.Contains(body, "/admin/users") {
		t.Error("admin role should see the users nav entry")
	}
}

func TestPageHidesAdminNavForEditors(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatal(err)
	}

	sess := testSession()
	sess.Role = "editor"

	req := httptest.NewRequest(http.MethodGet, "/admin/faqs", nil)
	rr := httptest.NewRecorder()

	r.Page(rr, req, "faqs_list", &PageData{
		Title:   "FAQ",
		Section: "faqs",
		Session: sess,
		Data:    map[string]any{"Items": nil},
	})

	body := rr.Body.String()
	if strings.Contains(body, "/admin/users") {
		t.Error("editor role should not see the users nav entry")
	}
	if strings.Contains(body, "/admin/settings") {
		t.Error("editor role should not see the settings nav entry")
	}
}

func TestPageHTMXPartial(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/faqs", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	r.Page(rr, req, "faqs_list", &PageData{
		Title:   "FAQ",
		Section: "faqs",
		Session: testSession(),
		Data:    map[string]any{"Items": nil},
	})

	body := rr.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("HTMX partial should not include the html element")
	}
	if !strings.Contains(body, "Ofte stilte spørsmål") {
		t.Error("partial should include the content block")
	}
}

func TestPageStandaloneLogin(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	rr := httptest.NewRecorder()

	r.Page(rr, req, "login", &PageData{
		Title: "Logg inn",
		Data:  map[string]any{},
	})

	body := rr.Body.String()
	if !strings.Contains(body, "<html") {
		t.Error("standalone page should be a full document")
	}
	if !strings.Contains(body, `action="/admin/login"`) {
		t.Error("login page should contain the login form")
	}
	if strings.Contains(body, "/admin/courses") {
		t.Error("login page should not render the admin sidebar")
	}
}

// TestPageUploadControls verifies that image URL fields carry a file
// input wired to the media endpoint, with per-entity storage folders.
func TestPageUploadControls(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("hero form scopes the folder to the slide", func(t *testing.T) {
		slide := &models.HeroSlide{ID: uuid.New(), ImageURL: "https://example.test/old.jpg"}

		req := httptest.NewRequest(http.MethodGet, "/admin/hero/"+slide.ID.String(), nil)
		rr := httptest.NewRecorder()
		r.Page(rr, req, "hero_form", &PageData{
			Title:   "Rediger banner",
			Section: "hero",
			Session: testSession(),
			Data:    map[string]any{"IsNew": false, "Item": slide},
		})

		body := rr.Body.String()
		if !strings.Contains(body, `data-upload-folder="site/home-hero/`+slide.ID.String()+`"`) {
			t.Error("edit form should upload into the slide's folder")
		}
		if !strings.Contains(body, `data-upload-target="image_url"`) {
			t.Error("file input should target the image_url field")
		}
		if !strings.Contains(body, "/admin/media") {
			t.Error("page should wire uploads to the media endpoint")
		}
	})

	t.Run("new hero form uses the shared folder", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/hero/new", nil)
		rr := httptest.NewRecorder()
		r.Page(rr, req, "hero_form", &PageData{
			Title:   "Nytt banner",
			Section: "hero",
			Session: testSession(),
			Data:    map[string]any{"IsNew": true, "Item": nil},
		})

		if !strings.Contains(rr.Body.String(), `data-upload-folder="site/home-hero"`) {
			t.Error("new form should upload into the shared hero folder")
		}
	})
}

func TestPageAssetMode(t *testing.T) {
	tests := []struct {
		name        string
		devMode     bool
		want        string
		wantMissing string
	}{
		{"dev uses CDN", true, "cdn.tailwindcss.com", "/static/css/admin.css"},
		{"prod uses local assets", false, "/static/css/admin.css", "cdn.tailwindcss.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.devMode)
			if err != nil {
				t.Fatal(err)
			}

			req := httptest.NewRequest(http.MethodGet, "/admin/faqs", nil)
			rr := httptest.NewRecorder()
			r.Page(rr, req, "faqs_list", &PageData{
				Title:   "FAQ",
				Section: "faqs",
				Session: testSession(),
				Data:    map[string]any{"Items": nil},
			})

			body := rr.Body.String()
			if !strings.Contains(body, tt.want) {
				t.Errorf("body missing %q", tt.want)
			}
			if strings.Contains(body, tt.wantMissing) {
				t.Errorf("body should not contain %q", tt.wantMissing)
			}
		})
	}
}

func TestPageUnknownTemplate(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rr := httptest.NewRecorder()
	r.Page(rr, req, "does_not_exist", &PageData{})

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
}

func TestSitePage(t *testing.T) {
	r, err := New(false)
	if err != nil {
		t.Fatal(err)
	}

	out, err := r.SitePage("notfound", &SiteData{
		Title:    "Siden finnes ikke",
		Settings: models.SiteSettings{"site_name": "Testkurs AS"},
	})
	if err != nil {
		t.Fatalf("SitePage: %v", err)
	}

	body := string(out)
	if !strings.Contains(body, "404") {
		t.Error("not-found page should contain 404")
	}
	if !strings.Contains(body, "Testkurs AS") {
		t.Error("page should use the configured site name")
	}
	if !strings.Contains(body, "<html") {
		t.Error("site page should be a full document")
	}
}

func TestSitePageUnknownTemplate(t *testing.T) {
	r, err := New(false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := r.SitePage("does_not_exist", &SiteData{}); err == nil {
		t.Error("expected error for unknown site template")
	}
}

func TestIsHTMX(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"htmx request", "true", true},
		{"plain request", "", false},
		{"other value", "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}
			if got := isHTMX(req); got != tt.want {
				t.Errorf("isHTMX: got %v, want %v", got, tt.want)
			}
		})
	}
}
