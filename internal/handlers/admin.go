// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the course portal.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kursportal/internal/cache"
	"kursportal/internal/icon"
	"kursportal/internal/middleware"
	"kursportal/internal/models"
	"kursportal/internal/render"
	"kursportal/internal/session"
	"kursportal/internal/storage"
	"kursportal/internal/store"
)

// recentLeadCount is how many leads the dashboard shows.
const recentLeadCount = 5

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer        *render.Renderer
	sessions        *session.Store
	courseStore     *store.CourseStore
	categoryStore   *store.CategoryStore
	runStore        *store.CourseRunStore
	leadStore       *store.LeadStore
	reviewStore     *store.ReviewStore
	faqStore        *store.FAQStore
	instructorStore *store.InstructorStore
	teamStore       *store.TeamMemberStore
	heroStore       *store.HeroSlideStore
	legalStore      *store.LegalPageStore
	userStore       *store.UserStore
	settingStore    *store.SiteSettingStore
	storageClient   *storage.Client
	iconPipeline    *icon.Pipeline
	pageCache       *cache.PageCache
}

// AdminDeps bundles the Admin handler group's dependencies.
// StorageClient and IconPipeline may be nil if S3 is not configured.
type AdminDeps struct {
	Renderer        *render.Renderer
	Sessions        *session.Store
	CourseStore     *store.CourseStore
	CategoryStore   *store.CategoryStore
	RunStore        *store.CourseRunStore
	LeadStore       *store.LeadStore
	ReviewStore     *store.ReviewStore
	FAQStore        *store.FAQStore
	InstructorStore *store.InstructorStore
	TeamStore       *store.TeamMemberStore
	HeroStore       *store.HeroSlideStore
	LegalStore      *store.LegalPageStore
	UserStore       *store.UserStore
	SettingStore    *store.SiteSettingStore
	StorageClient   *storage.Client
	IconPipeline    *icon.Pipeline
	PageCache       *cache.PageCache
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(d AdminDeps) *Admin {
	return &Admin{
		renderer:        d.Renderer,
		sessions:        d.Sessions,
		courseStore:     d.CourseStore,
		categoryStore:   d.CategoryStore,
		runStore:        d.RunStore,
		leadStore:       d.LeadStore,
		reviewStore:     d.ReviewStore,
		faqStore:        d.FAQStore,
		instructorStore: d.InstructorStore,
		teamStore:       d.TeamStore,
		heroStore:       d.HeroStore,
		legalStore:      d.LegalStore,
		userStore:       d.UserStore,
		settingStore:    d.SettingStore,
		storageClient:   d.StorageClient,
		iconPipeline:    d.IconPipeline,
		pageCache:       d.PageCache,
	}
}

// Dashboard renders the admin dashboard with live stats and recent leads.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	courses, _ := a.courseStore.List()
	runs, _ := a.runStore.List()
	statusCounts, _ := a.leadStore.CountByStatus()

	reviews, _ := a.reviewStore.List()
	pendingReviews := 0
	for i := range reviews {
		if !reviews[i].IsApproved {
			pendingReviews++
		}
	}

	leads, err := a.leadStore.List()
	if err != nil {
		slog.Error("list leads failed", "error", err)
	}
	if len(leads) > recentLeadCount {
		leads = leads[:recentLeadCount]
	}
	a.attachLeadCourseTitles(leads)

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Oversikt",
		Section: "dashboard",
		Data: map[string]any{
			"CourseCount":        len(courses),
			"RunCount":           len(runs),
			"NewLeadCount":       statusCounts[models.LeadStatusNew],
			"PendingReviewCount": pendingReviews,
			"RecentLeads":        leads,
		},
	})
}

// UsersList renders the user management page.
func (a *Admin) UsersList(w http.ResponseWriter, r *http.Request) {
	users, err := a.userStore.List()
	if err != nil {
		slog.Error("list users failed", "error", err)
	}

	a.renderer.Page(w, r, "users_list", &render.PageData{
		Title:   "Brukere",
		Section: "users",
		Data:    map[string]any{"Users": users},
	})
}

// UserNew renders the new user creation form.
func (a *Admin) UserNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "user_form", &render.PageData{
		Title:   "Ny bruker",
		Section: "users",
		Data:    map[string]any{},
	})
}

// UserCreate handles the new user form submission.
func (a *Admin) UserCreate(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	displayName := strings.TrimSpace(r.FormValue("display_name"))
	password := r.FormValue("password")
	role := models.Role(r.FormValue("role"))

	var errMsg string
	switch {
	case email == "":
		errMsg = "E-post er påkrevd."
	case displayName == "":
		errMsg = "Visningsnavn er påkrevd."
	case len(password) < 8:
		errMsg = "Passordet må være minst 8 tegn."
	case role != models.RoleAdmin && role != models.RoleEditor:
		errMsg = "Ugyldig rolle."
	}

	if errMsg == "" {
		if existing, _ := a.userStore.FindByEmail(email); existing != nil {
			errMsg = "En bruker med denne e-posten finnes allerede."
		}
	}

	if errMsg != "" {
		a.renderer.Page(w, r, "user_form", &render.PageData{
			Title:   "Ny bruker",
			Section: "users",
			Data: map[string]any{
				"Error":       errMsg,
				"Email":       email,
				"DisplayName": displayName,
				"Role":        string(role),
			},
		})
		return
	}

	if _, err := a.userStore.Create(email, password, displayName, role); err != nil {
		slog.Error("create user failed", "error", err)
		a.renderer.Page(w, r, "user_form", &render.PageData{
			Title:   "Ny bruker",
			Section: "users",
			Data: map[string]any{
				"Error":       "Kunne ikke opprette brukeren.",
				"Email":       email,
				"DisplayName": displayName,
				"Role":        string(role),
			},
		})
		return
	}

	sess := middleware.SessionFromCtx(r.Context())
	slog.Info("user created", "admin", sess.Email, "new_user", email, "role", role)

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}

// UserResetTwoFA resets another user's 2FA, forcing re-setup on next login.
func (a *Admin) UserResetTwoFA(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, ok := parseID(w, r)
	if !ok {
		return
	}

	// Cannot reset your own 2FA.
	if targetID == sess.UserID {
		http.Error(w, "Cannot reset your own 2FA", http.StatusForbidden)
		return
	}

	if err := a.userStore.ResetTOTP(targetID); err != nil {
		slog.Error("reset 2fa failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	slog.Info("2fa reset by admin", "admin", sess.Email, "target_user", targetID)
	a.UsersList(w, r)
}

// UserDelete removes a user account.
func (a *Admin) UserDelete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	targetID, ok := parseID(w, r)
	if !ok {
		return
	}

	if targetID == sess.UserID {
		http.Error(w, "Cannot delete your own account", http.StatusForbidden)
		return
	}

	if err := a.userStore.Delete(targetID); err != nil {
		slog.Error("delete user failed", "error", err)
	} else {
		slog.Info("user deleted", "admin", sess.Email, "target_user", targetID)
	}

	redirect(w, r, "/admin/users")
}

// SettingsPage renders the site settings form.
func (a *Admin) SettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := a.settingStore.All()
	if err != nil {
		slog.Error("load settings failed", "error", err)
	}

	a.renderer.Page(w, r, "settings", &render.PageData{
		Title:   "Innstillinger",
		Section: "settings",
		Data:    map[string]any{"Settings": settings},
	})
}

// SettingsSave persists the site settings form and invalidates the page
// cache, since contact details render in the public footer.
func (a *Admin) SettingsSave(w http.ResponseWriter, r *http.Request) {
	values := map[string]string{
		"site_name":     strings.TrimSpace(r.FormValue("site_name")),
		"contact_email": strings.TrimSpace(r.FormValue("contact_email")),
		"contact_phone": strings.TrimSpace(r.FormValue("contact_phone")),
		"address":       strings.TrimSpace(r.FormValue("address")),
		"about_text":    strings.TrimSpace(r.FormValue("about_text")),
	}

	if err := a.settingStore.SetMany(values); err != nil {
		slog.Error("save settings failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidatePages(r.Context())

	settings, _ := a.settingStore.All()
	a.renderer.Page(w, r, "settings", &render.PageData{
		Title:   "Innstillinger",
		Section: "settings",
		Data: map[string]any{
			"Settings": settings,
			"Saved":    true,
		},
	})
}

// --- Shared helpers ---

// invalidatePages purges the public page cache. Every admin write calls
// this; listings, detail pages, and the footer can all be affected.
func (a *Admin) invalidatePages(ctx context.Context) {
	a.pageCache.InvalidateAll(ctx)
}

// attachLeadCourseTitles resolves course titles for leads that reference
// a course. Explicit two-step fetch keyed by course ID.
func (a *Admin) attachLeadCourseTitles(leads []models.Lead) {
	titles := make(map[uuid.UUID]string)
	for i := range leads {
		cid := leads[i].CourseID
		if cid == nil {
			continue
		}
		title, ok := titles[*cid]
		if !ok {
			course, err := a.courseStore.FindByID(*cid)
			if err != nil || course == nil {
				continue
			}
			title = course.Title
			titles[*cid] = title
		}
		t := title
		leads[i].CourseTitle = &t
	}
}

// attachRunCourseInfo resolves course titles and slugs for runs.
func (a *Admin) attachRunCourseInfo(runs []models.CourseRun) {
	attachRunCourseInfo(a.courseStore, runs)
}

func attachRunCourseInfo(courses *store.CourseStore, runs []models.CourseRun) {
	type courseRef struct {
		title string
		slug  string
	}
	refs := make(map[uuid.UUID]courseRef)
	for i := range runs {
		ref, ok := refs[runs[i].CourseID]
		if !ok {
			course, err := courses.FindByID(runs[i].CourseID)
			if err != nil || course == nil {
				continue
			}
			ref = courseRef{title: course.Title, slug: course.Slug}
			refs[runs[i].CourseID] = ref
		}
		runs[i].CourseTitle = ref.title
		runs[i].CourseSlug = ref.slug
	}
}

// parseID extracts and parses the {id} URL parameter, writing a 400 on
// failure.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// redirect sends an HTMX-aware redirect: HX-Redirect for HTMX requests,
// a standard 303 otherwise.
func redirect(w http.ResponseWriter, r *http.Request, url string) {
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// optStr returns a pointer to the trimmed form value, or nil when empty.
func optStr(r *http.Request, field string) *string {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return nil
	}
	return &v
}

// optInt parses an optional integer form value, returning nil when empty
// or unparseable.
func optInt(r *http.Request, field string) *int {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// formInt parses an integer form value with a fallback default.
func formInt(r *http.Request, field string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(r.FormValue(field)))
	if err != nil {
		return fallback
	}
	return n
}

// formBool reports whether a checkbox field was submitted.
func formBool(r *http.Request, field string) bool {
	return r.FormValue(field) != ""
}

// formLanguages collects the checked language codes in canonical order.
func formLanguages(r *http.Request) []string {
	r.ParseForm()
	var langs []string
	for _, code := range []string{"no", "en", "sign"} {
		for _, v := range r.Form["languages"] {
			if v == code {
				langs = append(langs, code)
				break
			}
		}
	}
	return langs
}
