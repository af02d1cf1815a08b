// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"kursportal/internal/icon"
	"kursportal/internal/models"
	"kursportal/internal/render"
	"kursportal/internal/slug"
)

// --- Courses CRUD ---

// CoursesList renders the course management page.
func (a *Admin) CoursesList(w http.ResponseWriter, r *http.Request) {
	courses, err := a.courseStore.List()
	if err != nil {
		slog.Error("list courses failed", "error", err)
	}

	a.renderer.Page(w, r, "courses_list", &render.PageData{
		Title:   "Kurs",
		Section: "courses",
		Data:    map[string]any{"Items": courses},
	})
}

// CourseNew renders the new course form.
func (a *Admin) CourseNew(w http.ResponseWriter, r *http.Request) {
	categories, _ := a.categoryStore.List()
	a.renderer.Page(w, r, "course_form", &render.PageData{
		Title:   "Nytt kurs",
		Section: "courses",
		Data: map[string]any{
			"IsNew":      true,
			"Categories": categories,
		},
	})
}

// CourseCreate handles the new course form submission.
func (a *Admin) CourseCreate(w http.ResponseWriter, r *http.Request) {
	c := &models.Course{}
	a.applyCourseForm(r, c)

	if errMsg := a.validateCourseForm(c); errMsg != "" {
		a.renderCourseForm(w, r, c, true, errMsg)
		return
	}

	if _, err := a.courseStore.Create(c); err != nil {
		slog.Error("create course failed", "error", err)
		a.renderCourseForm(w, r, c, true, "Kunne ikke opprette kurset. Sjekk om slug allerede finnes.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/courses", http.StatusSeeOther)
}

// CourseEdit renders the edit course form.
func (a *Admin) CourseEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.courseStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderCourseForm(w, r, item, false, "")
}

// CourseUpdate handles the edit course form submission.
func (a *Admin) CourseUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.courseStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.applyCourseForm(r, item)

	if errMsg := a.validateCourseForm(item); errMsg != "" {
		a.renderCourseForm(w, r, item, false, errMsg)
		return
	}

	if err := a.courseStore.Update(item); err != nil {
		slog.Error("update course failed", "error", err)
		a.renderCourseForm(w, r, item, false, "Kunne ikke lagre kurset. Sjekk om slug allerede finnes.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/courses")
}

// CourseDelete handles course deletion.
func (a *Admin) CourseDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.courseStore.Delete(id); err != nil {
		slog.Error("delete course failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/courses")
}

// applyCourseForm fills a course from the submitted form values.
func (a *Admin) applyCourseForm(r *http.Request, c *models.Course) {
	c.Title = strings.TrimSpace(r.FormValue("title"))
	c.Slug = strings.TrimSpace(r.FormValue("slug"))
	if c.Slug == "" {
		c.Slug = slug.Generate(c.Title)
	}
	c.CourseType = models.CourseType(r.FormValue("course_type"))
	if c.CourseType == "" {
		c.CourseType = models.CourseTypeOther
	}
	c.CategorySlug = optStr(r, "category_slug")
	c.ShortDescription = optStr(r, "short_description")
	c.Description = optStr(r, "description")
	c.TargetAudience = optStr(r, "target_audience")
	c.LearningOutcomes = optStr(r, "learning_outcomes")
	c.CourseStructure = optStr(r, "course_structure")
	c.Requirements = optStr(r, "requirements")
	c.CertificationInfo = optStr(r, "certification_info")
	c.PracticalInfo = optStr(r, "practical_info")
	c.Duration = optStr(r, "duration")
	c.Languages = formLanguages(r)
	c.ImageURL = optStr(r, "image_url")
	c.HeroImageURL = optStr(r, "hero_image_url")
	c.IsActive = formBool(r, "is_active")
	c.IsFeatured = formBool(r, "is_featured")

	c.OfferTitle = optStr(r, "offer_title")
	c.OfferBody = optStr(r, "offer_body")
	c.OfferIsActive = formBool(r, "offer_is_active")
	c.OfferExpiresAt = nil
	if v := strings.TrimSpace(r.FormValue("offer_expires_at")); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			c.OfferExpiresAt = &t
		}
	}
}

// validateCourseForm runs the course validators against a filled course.
func (a *Admin) validateCourseForm(c *models.Course) string {
	short := ""
	if c.ShortDescription != nil {
		short = *c.ShortDescription
	}
	if errMsg := validateCourse(c.Title, c.Slug, short); errMsg != "" {
		return errMsg
	}
	var sections []string
	for _, p := range []*string{c.Description, c.TargetAudience, c.LearningOutcomes, c.CourseStructure, c.Requirements, c.CertificationInfo, c.PracticalInfo} {
		if p != nil {
			sections = append(sections, *p)
		}
	}
	return validateSections(sections...)
}

// renderCourseForm renders the course form with the given item and error.
func (a *Admin) renderCourseForm(w http.ResponseWriter, r *http.Request, c *models.Course, isNew bool, errMsg string) {
	categories, _ := a.categoryStore.List()

	title := "Rediger kurs"
	if isNew {
		title = "Nytt kurs"
	}

	data := map[string]any{
		"IsNew":      isNew,
		"Item":       c,
		"Categories": categories,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "course_form", &render.PageData{
		Title:   title,
		Section: "courses",
		Data:    data,
	})
}

// --- Categories CRUD ---

// CategoriesList renders the category management page.
func (a *Admin) CategoriesList(w http.ResponseWriter, r *http.Request) {
	categories, err := a.categoryStore.List()
	if err != nil {
		slog.Error("list categories failed", "error", err)
	}

	a.renderer.Page(w, r, "categories_list", &render.PageData{
		Title:   "Kategorier",
		Section: "categories",
		Data:    map[string]any{"Items": categories},
	})
}

// CategoryNew renders the new category form.
func (a *Admin) CategoryNew(w http.ResponseWriter, r *http.Request) {
	a.renderer.Page(w, r, "category_form", &render.PageData{
		Title:   "Ny kategori",
		Section: "categories",
		Data:    map[string]any{"IsNew": true},
	})
}

// CategoryCreate handles the new category form submission.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	c := &models.Category{}
	a.applyCategoryForm(r, c)

	if errMsg := validateName(c.Name); errMsg != "" {
		a.renderCategoryForm(w, r, c, true, errMsg, "")
		return
	}

	if _, err := a.categoryStore.Create(c); err != nil {
		slog.Error("create category failed", "error", err)
		a.renderCategoryForm(w, r, c, true, "Kunne ikke opprette kategorien. Sjekk om slug allerede finnes.", "")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/categories", http.StatusSeeOther)
}

// CategoryEdit renders the edit category form.
func (a *Admin) CategoryEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.categoryStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderCategoryForm(w, r, item, false, "", "")
}

// CategoryUpdate handles the edit category form submission.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.categoryStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.applyCategoryForm(r, item)

	if errMsg := validateName(item.Name); errMsg != "" {
		a.renderCategoryForm(w, r, item, false, errMsg, "")
		return
	}

	if err := a.categoryStore.Update(item); err != nil {
		slog.Error("update category failed", "error", err)
		a.renderCategoryForm(w, r, item, false, "Kunne ikke lagre kategorien.", "")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/categories")
}

// CategoryDelete handles category deletion. System categories are
// protected at the store level; the delete button is also hidden for
// them in the UI.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.categoryStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if item.IsSystem {
		http.Error(w, "System categories cannot be deleted", http.StatusForbidden)
		return
	}

	if err := a.categoryStore.Delete(id); err != nil {
		slog.Error("delete category failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/categories")
}

// CategoryIconUpload runs the icon pipeline for an uploaded raster and
// re-renders the category form with the result or the validation error.
func (a *Admin) CategoryIconUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.categoryStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if a.iconPipeline == nil {
		a.renderCategoryForm(w, r, item, false, "", "Objektlagring er ikke konfigurert.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, icon.MaxIconSize+1024)
	if err := r.ParseMultipartForm(icon.MaxIconSize); err != nil {
		a.renderCategoryForm(w, r, item, false, "", icon.ErrFileTooLarge.Error())
		return
	}

	file, header, err := r.FormFile("icon")
	if err != nil {
		a.renderCategoryForm(w, r, item, false, "", "Ingen fil valgt.")
		return
	}
	defer file.Close()

	// Sniff the content type rather than trusting the client header.
	sniffBuf := make([]byte, 512)
	n, err := file.Read(sniffBuf)
	if err != nil && err != io.EOF {
		a.renderCategoryForm(w, r, item, false, "", "Kunne ikke lese filen.")
		return
	}
	contentType := http.DetectContentType(sniffBuf[:n])
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		a.renderCategoryForm(w, r, item, false, "", "Kunne ikke lese filen.")
		return
	}

	_, err = a.iconPipeline.ConvertAndStore(r.Context(), item.ID, item.Slug, icon.Upload{
		ContentType: contentType,
		Size:        header.Size,
		Data:        file,
	})
	if err != nil {
		slog.Error("icon pipeline failed", "error", err, "category", item.Slug)
		a.renderCategoryForm(w, r, item, false, "", iconErrorMessage(err))
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/categories/"+item.ID.String(), http.StatusSeeOther)
}

// iconErrorMessage maps pipeline errors to admin-facing Norwegian text.
func iconErrorMessage(err error) string {
	switch err {
	case icon.ErrFileTooLarge:
		return "Filen er for stor (maks 10 MB)."
	case icon.ErrNotImage:
		return "Bare bildefiler er tillatt."
	default:
		return "Konvertering av ikonet feilet. Prøv igjen."
	}
}

// applyCategoryForm fills a category from the submitted form values.
// Slug is locked for system categories.
func (a *Admin) applyCategoryForm(r *http.Request, c *models.Category) {
	c.Name = strings.TrimSpace(r.FormValue("name"))
	if !c.IsSystem {
		c.Slug = strings.TrimSpace(r.FormValue("slug"))
		if c.Slug == "" {
			c.Slug = slug.Generate(c.Name)
		}
	}
	c.IconSizePx = formInt(r, "icon_size_px", 64)
	c.IconPlateVariant = r.FormValue("icon_plate_variant")
	if c.IconPlateVariant == "" {
		c.IconPlateVariant = "default"
	}
	c.SortOrder = formInt(r, "sort_order", 0)
	c.IsActive = formBool(r, "is_active")
}

// renderCategoryForm renders the category form with optional errors.
func (a *Admin) renderCategoryForm(w http.ResponseWriter, r *http.Request, c *models.Category, isNew bool, errMsg, iconErr string) {
	title := "Rediger kategori"
	if isNew {
		title = "Ny kategori"
	}

	data := map[string]any{
		"IsNew": isNew,
		"Item":  c,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	if iconErr != "" {
		data["IconError"] = iconErr
	}

	a.renderer.Page(w, r, "category_form", &render.PageData{
		Title:   title,
		Section: "categories",
		Data:    data,
	})
}

// --- Course runs CRUD ---

// RunsList renders the course run management page.
func (a *Admin) RunsList(w http.ResponseWriter, r *http.Request) {
	runs, err := a.runStore.List()
	if err != nil {
		slog.Error("list runs failed", "error", err)
	}
	a.attachRunCourseInfo(runs)

	a.renderer.Page(w, r, "runs_list", &render.PageData{
		Title:   "Gjennomføringer",
		Section: "runs",
		Data:    map[string]any{"Items": runs},
	})
}

// RunNew renders the new course run form.
func (a *Admin) RunNew(w http.ResponseWriter, r *http.Request) {
	a.renderRunForm(w, r, &models.CourseRun{}, true, "")
}

// RunCreate handles the new course run form submission.
func (a *Admin) RunCreate(w http.ResponseWriter, r *http.Request) {
	run := &models.CourseRun{}
	if errMsg := a.applyRunForm(r, run); errMsg != "" {
		a.renderRunForm(w, r, run, true, errMsg)
		return
	}

	if _, err := a.runStore.Create(run); err != nil {
		slog.Error("create run failed", "error", err)
		a.renderRunForm(w, r, run, true, "Kunne ikke opprette gjennomføringen.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/runs", http.StatusSeeOther)
}

// RunEdit renders the edit course run form.
func (a *Admin) RunEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.runStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderRunForm(w, r, item, false, "")
}

// RunUpdate handles the edit course run form submission.
func (a *Admin) RunUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.runStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	if errMsg := a.applyRunForm(r, item); errMsg != "" {
		a.renderRunForm(w, r, item, false, errMsg)
		return
	}

	if err := a.runStore.Update(item); err != nil {
		slog.Error("update run failed", "error", err)
		a.renderRunForm(w, r, item, false, "Kunne ikke lagre gjennomføringen.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/runs")
}

// RunDelete handles course run deletion.
func (a *Admin) RunDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.runStore.Delete(id); err != nil {
		slog.Error("delete run failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/runs")
}

// applyRunForm fills a run from the submitted form. Returns an error
// message when the referenced course is missing or invalid.
func (a *Admin) applyRunForm(r *http.Request, run *models.CourseRun) string {
	courseID, err := uuid.Parse(r.FormValue("course_id"))
	if err != nil {
		return "Velg et kurs."
	}
	run.CourseID = courseID

	run.InstructorID = nil
	if v := r.FormValue("instructor_id"); v != "" {
		if iid, err := uuid.Parse(v); err == nil {
			run.InstructorID = &iid
		}
	}

	run.ClientLabel = optStr(r, "client_label")
	run.LocationText = optStr(r, "location_text")
	run.DateLabel = optStr(r, "date_label")
	run.Summary = optStr(r, "summary")
	run.Notes = optStr(r, "notes")
	run.ParticipantsCount = optInt(r, "participants_count")
	run.PassedCount = optInt(r, "passed_count")
	run.IsPublished = formBool(r, "is_published")
	run.IsFeatured = formBool(r, "is_featured")

	run.DateStart = parseDateField(r, "date_start")
	run.DateEnd = parseDateField(r, "date_end")

	// One media URL per line; empty lines are skipped.
	run.Media = nil
	for _, line := range strings.Split(r.FormValue("media"), "\n") {
		url := strings.TrimSpace(line)
		if url == "" {
			continue
		}
		mediaType := "image"
		if strings.HasSuffix(url, ".mp4") || strings.HasSuffix(url, ".webm") {
			mediaType = "video"
		}
		run.Media = append(run.Media, models.MediaItem{Type: mediaType, URL: url})
	}

	return ""
}

// renderRunForm renders the course run form with its select options.
func (a *Admin) renderRunForm(w http.ResponseWriter, r *http.Request, run *models.CourseRun, isNew bool, errMsg string) {
	courses, _ := a.courseStore.List()
	instructors, _ := a.instructorStore.List()

	title := "Rediger gjennomføring"
	if isNew {
		title = "Ny gjennomføring"
	}

	data := map[string]any{
		"IsNew":       isNew,
		"Item":        run,
		"Courses":     courses,
		"Instructors": instructors,
	}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "run_form", &render.PageData{
		Title:   title,
		Section: "runs",
		Data:    data,
	})
}

// parseDateField parses an optional yyyy-mm-dd form field.
func parseDateField(r *http.Request, field string) *time.Time {
	v := strings.TrimSpace(r.FormValue(field))
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}
