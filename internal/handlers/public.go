// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"kursportal/internal/cache"
	"kursportal/internal/filter"
	"kursportal/internal/markdown"
	"kursportal/internal/middleware"
	"kursportal/internal/models"
	"kursportal/internal/render"
	"kursportal/internal/store"
)

// Public groups handlers for the visitor-facing site. Form-free pages
// check the Valkey page cache before rendering and store the rendered
// HTML on miss. The inquiry page is never cached because it embeds a
// per-visitor CSRF token.
type Public struct {
	renderer      *render.Renderer
	courseStore   *store.CourseStore
	categoryStore *store.CategoryStore
	runStore      *store.CourseRunStore
	reviewStore   *store.ReviewStore
	faqStore      *store.FAQStore
	teamStore     *store.TeamMemberStore
	heroStore     *store.HeroSlideStore
	legalStore    *store.LegalPageStore
	leadStore     *store.LeadStore
	settingStore  *store.SiteSettingStore
	pageCache     *cache.PageCache
}

// PublicDeps bundles the Public handler group's dependencies.
type PublicDeps struct {
	Renderer      *render.Renderer
	CourseStore   *store.CourseStore
	CategoryStore *store.CategoryStore
	RunStore      *store.CourseRunStore
	ReviewStore   *store.ReviewStore
	FAQStore      *store.FAQStore
	TeamStore     *store.TeamMemberStore
	HeroStore     *store.HeroSlideStore
	LegalStore    *store.LegalPageStore
	LeadStore     *store.LeadStore
	SettingStore  *store.SiteSettingStore
	PageCache     *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(d PublicDeps) *Public {
	return &Public{
		renderer:      d.Renderer,
		courseStore:   d.CourseStore,
		categoryStore: d.CategoryStore,
		runStore:      d.RunStore,
		reviewStore:   d.ReviewStore,
		faqStore:      d.FAQStore,
		teamStore:     d.TeamStore,
		heroStore:     d.HeroStore,
		legalStore:    d.LegalStore,
		leadStore:     d.LeadStore,
		settingStore:  d.SettingStore,
		pageCache:     d.PageCache,
	}
}

// Home renders the front page: hero slides, featured courses, published
// FAQs, and the team section.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	slides, _ := p.heroStore.ListActive()
	featured, err := p.courseStore.ListFeatured()
	if err != nil {
		slog.Error("list featured courses failed", "error", err)
	}
	p.attachCategories(featured)
	faqs, _ := p.faqStore.ListPublished()
	team, _ := p.teamStore.ListActive()

	p.render(w, r, "home", &render.SiteData{
		Title:   "Hjem",
		Section: "home",
		Data: map[string]any{
			"Slides":          slides,
			"FeaturedCourses": featured,
			"FAQs":            faqs,
			"Team":            team,
		},
	}, true)
}

// Courses renders the course catalogue with optional type, language,
// and category filters. Filtering happens in memory on the full active
// set; only the unfiltered page is cached.
func (p *Public) Courses(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	q := r.URL.Query()
	crit := filter.CourseCriteria{
		Type:         models.CourseType(q.Get("type")),
		Language:     q.Get("sprak"),
		CategorySlug: q.Get("kategori"),
	}
	filtered := crit.Type != "" || crit.Language != "" || crit.CategorySlug != ""

	courses, err := p.courseStore.ListActive()
	if err != nil {
		slog.Error("list active courses failed", "error", err)
	}
	courses = filter.Courses(courses, crit)
	p.attachCategories(courses)

	categories, _ := p.categoryStore.ListActive()

	p.render(w, r, "courses", &render.SiteData{
		Title:   "Kurs",
		Section: "courses",
		Data: map[string]any{
			"Courses":        courses,
			"Categories":     categories,
			"FilterType":     string(crit.Type),
			"FilterLanguage": crit.Language,
			"FilterCategory": crit.CategorySlug,
			"Filtered":       filtered,
		},
	}, !filtered)
}

// CourseDetail renders a single course page with its published runs and
// approved reviews.
func (p *Public) CourseDetail(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	slugParam := chi.URLParam(r, "slug")
	course, err := p.courseStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find course by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if course == nil || !course.IsActive {
		p.NotFound(w, r)
		return
	}

	runs, _ := p.runStore.ListByCourse(course.ID)
	published := runs[:0:0]
	for i := range runs {
		if runs[i].IsPublished {
			published = append(published, runs[i])
		}
	}

	// Approved reviews across all of this course's published runs.
	var reviews []models.Review
	for i := range published {
		rs, err := p.reviewStore.ListApprovedByRun(published[i].ID)
		if err != nil {
			continue
		}
		reviews = append(reviews, rs...)
	}

	p.render(w, r, "course_detail", &render.SiteData{
		Title:   course.Title,
		Section: "courses",
		Data: map[string]any{
			"Course":  course,
			"Runs":    published,
			"Reviews": reviews,
		},
	}, true)
}

// Archive renders the public archive of completed course runs with a
// year filter.
func (p *Public) Archive(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	runs, err := p.runStore.ListPublished()
	if err != nil {
		slog.Error("list published runs failed", "error", err)
	}
	attachRunCourseInfo(p.courseStore, runs)

	years := filter.RunYears(runs)
	yearFilter := r.URL.Query().Get("ar")
	filtered := filter.Runs(runs, filter.RunCriteria{Year: yearFilter})

	p.render(w, r, "archive", &render.SiteData{
		Title:   "Kursarkiv",
		Section: "archive",
		Data: map[string]any{
			"Runs":       filtered,
			"Years":      years,
			"YearFilter": yearFilter,
		},
	}, yearFilter == "")
}

// ArchiveDetail renders a single archived course run with its media
// gallery and approved reviews.
func (p *Public) ArchiveDetail(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		p.NotFound(w, r)
		return
	}

	run, err := p.runStore.FindByID(id)
	if err != nil {
		slog.Error("find run failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if run == nil || !run.IsPublished {
		p.NotFound(w, r)
		return
	}

	runs := []models.CourseRun{*run}
	attachRunCourseInfo(p.courseStore, runs)
	run = &runs[0]

	reviews, _ := p.reviewStore.ListApprovedByRun(run.ID)

	p.render(w, r, "archive_detail", &render.SiteData{
		Title:   run.CourseTitle,
		Section: "archive",
		Data: map[string]any{
			"Run":     run,
			"Reviews": reviews,
		},
	}, true)
}

// InquiryPage renders the inquiry form. Never cached: the form embeds
// the visitor's CSRF token.
func (p *Public) InquiryPage(w http.ResponseWriter, r *http.Request) {
	data := emptyInquiryForm()

	// Preselect the course when linked from a course page (?kurs=slug).
	if slugParam := r.URL.Query().Get("kurs"); slugParam != "" {
		if course, err := p.courseStore.FindBySlug(slugParam); err == nil && course != nil {
			data["SelectedCourseID"] = course.ID.String()
		}
	}

	courses, _ := p.courseStore.ListActive()
	data["Courses"] = courses

	p.render(w, r, "inquiry", &render.SiteData{
		Title:   "Send forespørsel",
		Section: "contact",
		Data:    data,
	}, false)
}

// InquirySubmit validates and stores an inquiry as a new lead.
func (p *Public) InquirySubmit(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	message := r.FormValue("message")

	if errMsg := validateInquiry(name, email, phone, message); errMsg != "" {
		data := inquiryFormData(r)
		data["Error"] = errMsg
		courses, _ := p.courseStore.ListActive()
		data["Courses"] = courses

		p.render(w, r, "inquiry", &render.SiteData{
			Title:   "Send forespørsel",
			Section: "contact",
			Data:    data,
		}, false)
		return
	}

	lead := &models.Lead{
		Name:                 name,
		Company:              optStr(r, "company"),
		Email:                optStr(r, "email"),
		Phone:                optStr(r, "phone"),
		Message:              optStr(r, "message"),
		ParticipantsEstimate: optInt(r, "participants_estimate"),
		DesiredTimeframe:     optStr(r, "desired_timeframe"),
		LanguagePreference:   optStr(r, "language_preference"),
		LocationText:         optStr(r, "location_text"),
		Status:               models.LeadStatusNew,
	}

	// Only accept course references that resolve to an active course.
	if v := r.FormValue("course_id"); v != "" {
		if cid, err := uuid.Parse(v); err == nil {
			if course, err := p.courseStore.FindByID(cid); err == nil && course != nil {
				lead.CourseID = &cid
			}
		}
	}

	created, err := p.leadStore.Create(lead)
	if err != nil {
		slog.Error("create lead failed", "error", err)
		data := inquiryFormData(r)
		data["Error"] = "En uventet feil oppstod. Prøv igjen senere."
		courses, _ := p.courseStore.ListActive()
		data["Courses"] = courses

		p.render(w, r, "inquiry", &render.SiteData{
			Title:   "Send forespørsel",
			Section: "contact",
			Data:    data,
		}, false)
		return
	}

	slog.Info("inquiry received", "lead_id", created.ID, "course_id", lead.CourseID)

	data := emptyInquiryForm()
	data["Submitted"] = true
	p.render(w, r, "inquiry", &render.SiteData{
		Title:   "Takk for forespørselen",
		Section: "contact",
		Data:    data,
	}, false)
}

// Legal renders a published legal page by slug. Doubles as the
// catch-all route for top-level slugs.
func (p *Public) Legal(w http.ResponseWriter, r *http.Request) {
	if p.serveCached(w, r) {
		return
	}

	slugParam := chi.URLParam(r, "slug")
	page, err := p.legalStore.FindPublishedBySlug(slugParam)
	if err != nil {
		slog.Error("find legal page failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		p.NotFound(w, r)
		return
	}

	p.render(w, r, "legal", &render.SiteData{
		Title:   page.Title,
		Section: "",
		Data: map[string]any{
			"Page": page,
			"Body": markdown.Render(page.BodyMD),
		},
	}, true)
}

// NotFound renders the site 404 page.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	settings, _ := p.settingStore.All()
	out, err := p.renderer.SitePage("notfound", &render.SiteData{
		Title:    "Siden finnes ikke",
		Settings: settings,
	})
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write(out)
}

// render executes a site template, writes the result, and stores it in
// the page cache when cacheable is set and the URL carries no query.
func (p *Public) render(w http.ResponseWriter, r *http.Request, name string, data *render.SiteData, cacheable bool) {
	settings, err := p.settingStore.All()
	if err != nil {
		slog.Error("load settings failed", "error", err)
	}
	data.Settings = settings
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	out, err := p.renderer.SitePage(name, data)
	if err != nil {
		slog.Error("render site page failed", "error", err, "page", name)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if cacheable && r.URL.RawQuery == "" && r.Method == http.MethodGet {
		p.pageCache.Set(r.Context(), cache.PageKey(r.URL.Path), out)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(out)
}

// serveCached writes the cached page for this path if present. Pages
// with query strings always render fresh.
func (p *Public) serveCached(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.RawQuery != "" {
		return false
	}
	cached, ok := p.pageCache.Get(r.Context(), cache.PageKey(r.URL.Path))
	if !ok {
		return false
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(cached)
	return true
}

// attachCategories resolves the category for each course, for icon
// rendering on course cards.
func (p *Public) attachCategories(courses []models.Course) {
	cats := make(map[string]*models.Category)
	for i := range courses {
		cslug := courses[i].CategorySlug
		if cslug == nil {
			continue
		}
		cat, ok := cats[*cslug]
		if !ok {
			var err error
			cat, err = p.categoryStore.FindBySlug(*cslug)
			if err != nil || cat == nil {
				continue
			}
			cats[*cslug] = cat
		}
		courses[i].Category = cat
	}
}

// emptyInquiryForm returns the inquiry form data map with all fields
// blank. Every key must exist so the template renders empty inputs.
func emptyInquiryForm() map[string]any {
	return map[string]any{
		"Name":                 "",
		"Company":              "",
		"Email":                "",
		"Phone":                "",
		"Message":              "",
		"ParticipantsEstimate": "",
		"DesiredTimeframe":     "",
		"LanguagePreference":   "",
		"LocationText":         "",
		"SelectedCourseID":     "",
		"Submitted":            false,
	}
}

// inquiryFormData echoes the submitted inquiry form values for
// re-rendering after a validation error.
func inquiryFormData(r *http.Request) map[string]any {
	return map[string]any{
		"Name":                 strings.TrimSpace(r.FormValue("name")),
		"Company":              strings.TrimSpace(r.FormValue("company")),
		"Email":                strings.TrimSpace(r.FormValue("email")),
		"Phone":                strings.TrimSpace(r.FormValue("phone")),
		"Message":              r.FormValue("message"),
		"ParticipantsEstimate": strings.TrimSpace(r.FormValue("participants_estimate")),
		"DesiredTimeframe":     strings.TrimSpace(r.FormValue("desired_timeframe")),
		"LanguagePreference":   strings.TrimSpace(r.FormValue("language_preference")),
		"LocationText":         strings.TrimSpace(r.FormValue("location_text")),
		"SelectedCourseID":     r.FormValue("course_id"),
		"Submitted":            false,
	}
}
