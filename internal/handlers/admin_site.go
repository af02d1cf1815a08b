// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"kursportal/internal/models"
	"kursportal/internal/render"
	"kursportal/internal/slug"
)

// statusOption is one entry in the lead status filter bar.
type statusOption struct {
	Value string
	Label string
	Count int
}

// --- Leads ---

// LeadsList renders the lead workflow page, optionally filtered by status.
func (a *Admin) LeadsList(w http.ResponseWriter, r *http.Request) {
	statusFilter := r.URL.Query().Get("status")
	if !models.ValidLeadStatus(statusFilter) {
		statusFilter = ""
	}

	var (
		leads []models.Lead
		err   error
	)
	if statusFilter != "" {
		leads, err = a.leadStore.ListByStatus(models.LeadStatus(statusFilter))
	} else {
		leads, err = a.leadStore.List()
	}
	if err != nil {
		slog.Error("list leads failed", "error", err)
	}
	a.attachLeadCourseTitles(leads)

	counts, _ := a.leadStore.CountByStatus()
	statuses := make([]statusOption, 0, len(models.LeadStatusLabels))
	for _, s := range []models.LeadStatus{
		models.LeadStatusNew,
		models.LeadStatusContacted,
		models.LeadStatusOffered,
		models.LeadStatusBooked,
		models.LeadStatusDone,
		models.LeadStatusLost,
	} {
		statuses = append(statuses, statusOption{
			Value: string(s),
			Label: models.LeadStatusLabels[s],
			Count: counts[s],
		})
	}

	a.renderer.Page(w, r, "leads_list", &render.PageData{
		Title:   "Henvendelser",
		Section: "leads",
		Data: map[string]any{
			"Items":        leads,
			"Statuses":     statuses,
			"StatusFilter": statusFilter,
		},
	})
}

// LeadStatusUpdate moves a lead to a new workflow status and re-renders
// the list for the HTMX swap.
func (a *Admin) LeadStatusUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	status := r.FormValue("status")
	if !models.ValidLeadStatus(status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	if err := a.leadStore.UpdateStatus(id, models.LeadStatus(status)); err != nil {
		slog.Error("update lead status failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.LeadsList(w, r)
}

// LeadDelete removes a lead.
func (a *Admin) LeadDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.leadStore.Delete(id); err != nil {
		slog.Error("delete lead failed", "error", err)
	}

	redirect(w, r, "/admin/leads")
}

// --- Reviews ---

// ReviewsList renders the review moderation page.
func (a *Admin) ReviewsList(w http.ResponseWriter, r *http.Request) {
	reviews, err := a.reviewStore.List()
	if err != nil {
		slog.Error("list reviews failed", "error", err)
	}

	a.renderer.Page(w, r, "reviews_list", &render.PageData{
		Title:   "Vurderinger",
		Section: "reviews",
		Data:    map[string]any{"Items": reviews},
	})
}

// ReviewNew renders the manual review entry form. Reviews arrive on
// paper or by email after a run; admins type them in here.
func (a *Admin) ReviewNew(w http.ResponseWriter, r *http.Request) {
	a.renderReviewForm(w, r, "")
}

// ReviewCreate handles the new review form submission.
func (a *Admin) ReviewCreate(w http.ResponseWriter, r *http.Request) {
	runID, err := uuid.Parse(r.FormValue("course_run_id"))
	if err != nil {
		a.renderReviewForm(w, r, "Velg en gjennomføring.")
		return
	}

	rating := formInt(r, "rating", 0)
	if rating < 1 || rating > 5 {
		a.renderReviewForm(w, r, "Vurderingen må være mellom 1 og 5.")
		return
	}

	review := &models.Review{
		CourseRunID: runID,
		Rating:      rating,
		DisplayName: optStr(r, "display_name"),
		Company:     optStr(r, "company"),
		Comment:     optStr(r, "comment"),
		IsApproved:  formBool(r, "is_approved"),
	}

	if _, err := a.reviewStore.Create(review); err != nil {
		slog.Error("create review failed", "error", err)
		a.renderReviewForm(w, r, "Kunne ikke lagre vurderingen.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/reviews", http.StatusSeeOther)
}

// ReviewApprove publishes a review on the public site.
func (a *Admin) ReviewApprove(w http.ResponseWriter, r *http.Request) {
	a.setReviewApproval(w, r, true)
}

// ReviewUnapprove hides a review from the public site.
func (a *Admin) ReviewUnapprove(w http.ResponseWriter, r *http.Request) {
	a.setReviewApproval(w, r, false)
}

func (a *Admin) setReviewApproval(w http.ResponseWriter, r *http.Request, approved bool) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.reviewStore.SetApproved(id, approved); err != nil {
		slog.Error("set review approval failed", "error", err, "approved", approved)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.invalidatePages(r.Context())
	a.ReviewsList(w, r)
}

// ReviewDelete removes a review.
func (a *Admin) ReviewDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.reviewStore.Delete(id); err != nil {
		slog.Error("delete review failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/reviews")
}

func (a *Admin) renderReviewForm(w http.ResponseWriter, r *http.Request, errMsg string) {
	runs, _ := a.runStore.List()
	a.attachRunCourseInfo(runs)

	data := map[string]any{"Runs": runs}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "review_form", &render.PageData{
		Title:   "Ny vurdering",
		Section: "reviews",
		Data:    data,
	})
}

// --- FAQs ---

// FAQsList renders the FAQ management page.
func (a *Admin) FAQsList(w http.ResponseWriter, r *http.Request) {
	faqs, err := a.faqStore.List()
	if err != nil {
		slog.Error("list faqs failed", "error", err)
	}

	a.renderer.Page(w, r, "faqs_list", &render.PageData{
		Title:   "Ofte stilte spørsmål",
		Section: "faqs",
		Data:    map[string]any{"Items": faqs},
	})
}

// FAQNew renders the new FAQ form.
func (a *Admin) FAQNew(w http.ResponseWriter, r *http.Request) {
	a.renderFAQForm(w, r, &models.FAQ{}, true, "")
}

// FAQCreate handles the new FAQ form submission.
func (a *Admin) FAQCreate(w http.ResponseWriter, r *http.Request) {
	f := &models.FAQ{}
	applyFAQForm(r, f)

	if errMsg := validateFAQ(f); errMsg != "" {
		a.renderFAQForm(w, r, f, true, errMsg)
		return
	}

	if _, err := a.faqStore.Create(f); err != nil {
		slog.Error("create faq failed", "error", err)
		a.renderFAQForm(w, r, f, true, "Kunne ikke opprette spørsmålet.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/faqs", http.StatusSeeOther)
}

// FAQEdit renders the edit FAQ form.
func (a *Admin) FAQEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.faqStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderFAQForm(w, r, item, false, "")
}

// FAQUpdate handles the edit FAQ form submission.
func (a *Admin) FAQUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.faqStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applyFAQForm(r, item)

	if errMsg := validateFAQ(item); errMsg != "" {
		a.renderFAQForm(w, r, item, false, errMsg)
		return
	}

	if err := a.faqStore.Update(item); err != nil {
		slog.Error("update faq failed", "error", err)
		a.renderFAQForm(w, r, item, false, "Kunne ikke lagre spørsmålet.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/faqs")
}

// FAQDelete removes a FAQ.
func (a *Admin) FAQDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.faqStore.Delete(id); err != nil {
		slog.Error("delete faq failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/faqs")
}

func applyFAQForm(r *http.Request, f *models.FAQ) {
	f.Question = strings.TrimSpace(r.FormValue("question"))
	f.Answer = strings.TrimSpace(r.FormValue("answer"))
	f.SortOrder = formInt(r, "sort_order", 0)
	f.IsPublished = formBool(r, "is_published")
}

func validateFAQ(f *models.FAQ) string {
	if f.Question == "" {
		return "Spørsmål er påkrevd."
	}
	if f.Answer == "" {
		return "Svar er påkrevd."
	}
	return ""
}

func (a *Admin) renderFAQForm(w http.ResponseWriter, r *http.Request, f *models.FAQ, isNew bool, errMsg string) {
	title := "Rediger spørsmål"
	if isNew {
		title = "Nytt spørsmål"
	}

	data := map[string]any{"IsNew": isNew, "Item": f}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "faq_form", &render.PageData{
		Title:   title,
		Section: "faqs",
		Data:    data,
	})
}

// --- Instructors ---

// InstructorsList renders the instructor management page.
func (a *Admin) InstructorsList(w http.ResponseWriter, r *http.Request) {
	instructors, err := a.instructorStore.List()
	if err != nil {
		slog.Error("list instructors failed", "error", err)
	}

	a.renderer.Page(w, r, "instructors_list", &render.PageData{
		Title:   "Instruktører",
		Section: "instructors",
		Data:    map[string]any{"Items": instructors},
	})
}

// InstructorNew renders the new instructor form.
func (a *Admin) InstructorNew(w http.ResponseWriter, r *http.Request) {
	a.renderInstructorForm(w, r, &models.Instructor{}, true, "")
}

// InstructorCreate handles the new instructor form submission.
func (a *Admin) InstructorCreate(w http.ResponseWriter, r *http.Request) {
	i := &models.Instructor{}
	applyInstructorForm(r, i)

	if errMsg := validateName(i.Name); errMsg != "" {
		a.renderInstructorForm(w, r, i, true, errMsg)
		return
	}

	if _, err := a.instructorStore.Create(i); err != nil {
		slog.Error("create instructor failed", "error", err)
		a.renderInstructorForm(w, r, i, true, "Kunne ikke opprette instruktøren.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/instructors", http.StatusSeeOther)
}

// InstructorEdit renders the edit instructor form.
func (a *Admin) InstructorEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.instructorStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderInstructorForm(w, r, item, false, "")
}

// InstructorUpdate handles the edit instructor form submission.
func (a *Admin) InstructorUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.instructorStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applyInstructorForm(r, item)

	if errMsg := validateName(item.Name); errMsg != "" {
		a.renderInstructorForm(w, r, item, false, errMsg)
		return
	}

	if err := a.instructorStore.Update(item); err != nil {
		slog.Error("update instructor failed", "error", err)
		a.renderInstructorForm(w, r, item, false, "Kunne ikke lagre instruktøren.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/instructors")
}

// InstructorDelete removes an instructor.
func (a *Admin) InstructorDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.instructorStore.Delete(id); err != nil {
		slog.Error("delete instructor failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/instructors")
}

func applyInstructorForm(r *http.Request, i *models.Instructor) {
	i.Name = strings.TrimSpace(r.FormValue("name"))
	i.Bio = optStr(r, "bio")
	i.PhotoURL = optStr(r, "photo_url")
	i.Languages = formLanguages(r)
	i.IsActive = formBool(r, "is_active")
}

func (a *Admin) renderInstructorForm(w http.ResponseWriter, r *http.Request, i *models.Instructor, isNew bool, errMsg string) {
	title := "Rediger instruktør"
	if isNew {
		title = "Ny instruktør"
	}

	data := map[string]any{"IsNew": isNew, "Item": i}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "instructor_form", &render.PageData{
		Title:   title,
		Section: "instructors",
		Data:    data,
	})
}

// --- Team members ---

// TeamList renders the team member management page.
func (a *Admin) TeamList(w http.ResponseWriter, r *http.Request) {
	members, err := a.teamStore.List()
	if err != nil {
		slog.Error("list team members failed", "error", err)
	}

	a.renderer.Page(w, r, "team_list", &render.PageData{
		Title:   "Team",
		Section: "team",
		Data:    map[string]any{"Items": members},
	})
}

// TeamNew renders the new team member form.
func (a *Admin) TeamNew(w http.ResponseWriter, r *http.Request) {
	a.renderTeamForm(w, r, &models.TeamMember{}, true, "")
}

// TeamCreate handles the new team member form submission.
func (a *Admin) TeamCreate(w http.ResponseWriter, r *http.Request) {
	m := &models.TeamMember{}
	applyTeamForm(r, m)

	if errMsg := validateName(m.Name); errMsg != "" {
		a.renderTeamForm(w, r, m, true, errMsg)
		return
	}

	if _, err := a.teamStore.Create(m); err != nil {
		slog.Error("create team member failed", "error", err)
		a.renderTeamForm(w, r, m, true, "Kunne ikke opprette teammedlemmet.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/team", http.StatusSeeOther)
}

// TeamEdit renders the edit team member form.
func (a *Admin) TeamEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.teamStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderTeamForm(w, r, item, false, "")
}

// TeamUpdate handles the edit team member form submission.
func (a *Admin) TeamUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.teamStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applyTeamForm(r, item)

	if errMsg := validateName(item.Name); errMsg != "" {
		a.renderTeamForm(w, r, item, false, errMsg)
		return
	}

	if err := a.teamStore.Update(item); err != nil {
		slog.Error("update team member failed", "error", err)
		a.renderTeamForm(w, r, item, false, "Kunne ikke lagre teammedlemmet.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/team")
}

// TeamDelete removes a team member.
func (a *Admin) TeamDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.teamStore.Delete(id); err != nil {
		slog.Error("delete team member failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/team")
}

func applyTeamForm(r *http.Request, m *models.TeamMember) {
	m.Name = strings.TrimSpace(r.FormValue("name"))
	m.Title = optStr(r, "title")
	m.Bio = optStr(r, "bio")
	m.PhotoURL = optStr(r, "photo_url")
	m.SortOrder = formInt(r, "sort_order", 0)
	m.IsActive = formBool(r, "is_active")

	// Skills arrive as a comma-separated list.
	m.Skills = nil
	for _, s := range strings.Split(r.FormValue("skills"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			m.Skills = append(m.Skills, s)
		}
	}
}

func (a *Admin) renderTeamForm(w http.ResponseWriter, r *http.Request, m *models.TeamMember, isNew bool, errMsg string) {
	title := "Rediger teammedlem"
	if isNew {
		title = "Nytt teammedlem"
	}

	data := map[string]any{"IsNew": isNew, "Item": m}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "team_form", &render.PageData{
		Title:   title,
		Section: "team",
		Data:    data,
	})
}

// --- Hero slides ---

// HeroList renders the hero slide management page.
func (a *Admin) HeroList(w http.ResponseWriter, r *http.Request) {
	slides, err := a.heroStore.List()
	if err != nil {
		slog.Error("list hero slides failed", "error", err)
	}

	a.renderer.Page(w, r, "hero_list", &render.PageData{
		Title:   "Forside-bannere",
		Section: "hero",
		Data:    map[string]any{"Items": slides},
	})
}

// HeroNew renders the new hero slide form.
func (a *Admin) HeroNew(w http.ResponseWriter, r *http.Request) {
	a.renderHeroForm(w, r, &models.HeroSlide{}, true, "")
}

// HeroCreate handles the new hero slide form submission.
func (a *Admin) HeroCreate(w http.ResponseWriter, r *http.Request) {
	h := &models.HeroSlide{}
	applyHeroForm(r, h)

	if h.ImageURL == "" {
		a.renderHeroForm(w, r, h, true, "Bilde-URL er påkrevd.")
		return
	}

	if _, err := a.heroStore.Create(h); err != nil {
		slog.Error("create hero slide failed", "error", err)
		a.renderHeroForm(w, r, h, true, "Kunne ikke opprette banneret.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/hero", http.StatusSeeOther)
}

// HeroEdit renders the edit hero slide form.
func (a *Admin) HeroEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.heroStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderHeroForm(w, r, item, false, "")
}

// HeroUpdate handles the edit hero slide form submission.
func (a *Admin) HeroUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.heroStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applyHeroForm(r, item)

	if item.ImageURL == "" {
		a.renderHeroForm(w, r, item, false, "Bilde-URL er påkrevd.")
		return
	}

	if err := a.heroStore.Update(item); err != nil {
		slog.Error("update hero slide failed", "error", err)
		a.renderHeroForm(w, r, item, false, "Kunne ikke lagre banneret.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/hero")
}

// HeroDelete removes a hero slide.
func (a *Admin) HeroDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.heroStore.Delete(id); err != nil {
		slog.Error("delete hero slide failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/hero")
}

func applyHeroForm(r *http.Request, h *models.HeroSlide) {
	h.ImageURL = strings.TrimSpace(r.FormValue("image_url"))
	h.Title = optStr(r, "title")
	h.Subtitle = optStr(r, "subtitle")
	h.CTAPrimaryLabel = optStr(r, "cta_primary_label")
	h.CTAPrimaryHref = optStr(r, "cta_primary_href")
	h.CTASecondaryLabel = optStr(r, "cta_secondary_label")
	h.CTASecondaryHref = optStr(r, "cta_secondary_href")
	h.SortOrder = formInt(r, "sort_order", 0)
	h.IsActive = formBool(r, "is_active")
}

func (a *Admin) renderHeroForm(w http.ResponseWriter, r *http.Request, h *models.HeroSlide, isNew bool, errMsg string) {
	title := "Rediger banner"
	if isNew {
		title = "Nytt banner"
	}

	data := map[string]any{"IsNew": isNew, "Item": h}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "hero_form", &render.PageData{
		Title:   title,
		Section: "hero",
		Data:    data,
	})
}

// --- Legal pages ---

// LegalList renders the legal page management view.
func (a *Admin) LegalList(w http.ResponseWriter, r *http.Request) {
	pages, err := a.legalStore.List()
	if err != nil {
		slog.Error("list legal pages failed", "error", err)
	}

	a.renderer.Page(w, r, "legal_list", &render.PageData{
		Title:   "Vilkårssider",
		Section: "legal",
		Data:    map[string]any{"Items": pages},
	})
}

// LegalNew renders the new legal page form.
func (a *Admin) LegalNew(w http.ResponseWriter, r *http.Request) {
	a.renderLegalForm(w, r, &models.LegalPage{}, true, "")
}

// LegalCreate handles the new legal page form submission.
func (a *Admin) LegalCreate(w http.ResponseWriter, r *http.Request) {
	p := &models.LegalPage{}
	applyLegalForm(r, p)

	if errMsg := validateLegalPage(p.Title, p.BodyMD); errMsg != "" {
		a.renderLegalForm(w, r, p, true, errMsg)
		return
	}

	if _, err := a.legalStore.Create(p); err != nil {
		slog.Error("create legal page failed", "error", err)
		a.renderLegalForm(w, r, p, true, "Kunne ikke opprette siden. Sjekk om slug allerede finnes.")
		return
	}

	a.invalidatePages(r.Context())
	http.Redirect(w, r, "/admin/legal", http.StatusSeeOther)
}

// LegalEdit renders the edit legal page form.
func (a *Admin) LegalEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.legalStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	a.renderLegalForm(w, r, item, false, "")
}

// LegalUpdate handles the edit legal page form submission.
func (a *Admin) LegalUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := a.legalStore.FindByID(id)
	if err != nil || item == nil {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}

	applyLegalForm(r, item)

	if errMsg := validateLegalPage(item.Title, item.BodyMD); errMsg != "" {
		a.renderLegalForm(w, r, item, false, errMsg)
		return
	}

	if err := a.legalStore.Update(item); err != nil {
		slog.Error("update legal page failed", "error", err)
		a.renderLegalForm(w, r, item, false, "Kunne ikke lagre siden.")
		return
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/legal")
}

// LegalDelete removes a legal page.
func (a *Admin) LegalDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := a.legalStore.Delete(id); err != nil {
		slog.Error("delete legal page failed", "error", err)
	}

	a.invalidatePages(r.Context())
	redirect(w, r, "/admin/legal")
}

func applyLegalForm(r *http.Request, p *models.LegalPage) {
	p.Title = strings.TrimSpace(r.FormValue("title"))
	p.Slug = strings.TrimSpace(r.FormValue("slug"))
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	p.BodyMD = r.FormValue("body_md")
	p.IsPublished = formBool(r, "is_published")
}

func (a *Admin) renderLegalForm(w http.ResponseWriter, r *http.Request, p *models.LegalPage, isNew bool, errMsg string) {
	title := "Rediger side"
	if isNew {
		title = "Ny side"
	}

	data := map[string]any{"IsNew": isNew, "Item": p}
	if errMsg != "" {
		data["Error"] = errMsg
	}

	a.renderer.Page(w, r, "legal_form", &render.PageData{
		Title:   title,
		Section: "legal",
		Data:    data,
	})
}
