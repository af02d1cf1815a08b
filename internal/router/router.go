// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// course portal. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kursportal/internal/handlers"
	"kursportal/internal/middleware"
	"kursportal/internal/session"
	"kursportal/web"
)

// Deps carries everything the router wires together.
type Deps struct {
	SessionStore   *session.Store
	Auth           *handlers.Auth
	Admin          *handlers.Admin
	Public         *handlers.Public
	LoginLimiter   *middleware.RateLimiter
	InquiryLimiter *middleware.RateLimiter
	Secure         bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.SessionStore))
	r.Use(middleware.NewCSRF(d.Secure))

	// Health check. No auth, no session.
	r.Get("/health", healthHandler)

	// Embedded static assets.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	r.Route("/admin", func(r chi.Router) {
		// Auth pages, accessible without a session.
		r.Group(func(r chi.Router) {
			r.Use(d.LoginLimiter.Middleware)
			r.Get("/login", d.Auth.LoginPage)
			r.Post("/login", d.Auth.LoginSubmit)
		})
		r.Post("/logout", d.Auth.Logout)

		// 2FA requires auth but NOT completed verification.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", d.Auth.TwoFASetupPage)
			r.Get("/2fa/verify", d.Auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", d.Auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", d.Admin.Dashboard)
			r.Get("/dashboard", d.Admin.Dashboard)

			r.Post("/media", d.Admin.MediaUpload)

			r.Route("/courses", func(r chi.Router) {
				r.Get("/", d.Admin.CoursesList)
				r.Get("/new", d.Admin.CourseNew)
				r.Post("/", d.Admin.CourseCreate)
				r.Get("/{id}", d.Admin.CourseEdit)
				r.Put("/{id}", d.Admin.CourseUpdate)
				r.Delete("/{id}", d.Admin.CourseDelete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", d.Admin.CategoriesList)
				r.Get("/new", d.Admin.CategoryNew)
				r.Post("/", d.Admin.CategoryCreate)
				r.Get("/{id}", d.Admin.CategoryEdit)
				r.Put("/{id}", d.Admin.CategoryUpdate)
				r.Delete("/{id}", d.Admin.CategoryDelete)
				r.Post("/{id}/icon", d.Admin.CategoryIconUpload)
			})

			r.Route("/runs", func(r chi.Router) {
				r.Get("/", d.Admin.RunsList)
				r.Get("/new", d.Admin.RunNew)
				r.Post("/", d.Admin.RunCreate)
				r.Get("/{id}", d.Admin.RunEdit)
				r.Put("/{id}", d.Admin.RunUpdate)
				r.Delete("/{id}", d.Admin.RunDelete)
			})

			r.Route("/leads", func(r chi.Router) {
				r.Get("/", d.Admin.LeadsList)
				r.Post("/{id}/status", d.Admin.LeadStatusUpdate)
				r.Delete("/{id}", d.Admin.LeadDelete)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", d.Admin.ReviewsList)
				r.Get("/new", d.Admin.ReviewNew)
				r.Post("/", d.Admin.ReviewCreate)
				r.Post("/{id}/approve", d.Admin.ReviewApprove)
				r.Post("/{id}/unapprove", d.Admin.ReviewUnapprove)
				r.Delete("/{id}", d.Admin.ReviewDelete)
			})

			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", d.Admin.FAQsList)
				r.Get("/new", d.Admin.FAQNew)
				r.Post("/", d.Admin.FAQCreate)
				r.Get("/{id}", d.Admin.FAQEdit)
				r.Put("/{id}", d.Admin.FAQUpdate)
				r.Delete("/{id}", d.Admin.FAQDelete)
			})

			r.Route("/instructors", func(r chi.Router) {
				r.Get("/", d.Admin.InstructorsList)
				r.Get("/new", d.Admin.InstructorNew)
				r.Post("/", d.Admin.InstructorCreate)
				r.Get("/{id}", d.Admin.InstructorEdit)
				r.Put("/{id}", d.Admin.InstructorUpdate)
				r.Delete("/{id}", d.Admin.InstructorDelete)
			})

			r.Route("/team", func(r chi.Router) {
				r.Get("/", d.Admin.TeamList)
				r.Get("/new", d.Admin.TeamNew)
				r.Post("/", d.Admin.TeamCreate)
				r.Get("/{id}", d.Admin.TeamEdit)
				r.Put("/{id}", d.Admin.TeamUpdate)
				r.Delete("/{id}", d.Admin.TeamDelete)
			})

			r.Route("/hero", func(r chi.Router) {
				r.Get("/", d.Admin.HeroList)
				r.Get("/new", d.Admin.HeroNew)
				r.Post("/", d.Admin.HeroCreate)
				r.Get("/{id}", d.Admin.HeroEdit)
				r.Put("/{id}", d.Admin.HeroUpdate)
				r.Delete("/{id}", d.Admin.HeroDelete)
			})

			r.Route("/legal", func(r chi.Router) {
				r.Get("/", d.Admin.LegalList)
				r.Get("/new", d.Admin.LegalNew)
				r.Post("/", d.Admin.LegalCreate)
				r.Get("/{id}", d.Admin.LegalEdit)
				r.Put("/{id}", d.Admin.LegalUpdate)
				r.Delete("/{id}", d.Admin.LegalDelete)
			})

			// User management and site settings, admin role only.
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/users", func(r chi.Router) {
					r.Get("/", d.Admin.UsersList)
					r.Get("/new", d.Admin.UserNew)
					r.Post("/", d.Admin.UserCreate)
					r.Post("/{id}/reset-2fa", d.Admin.UserResetTwoFA)
					r.Delete("/{id}", d.Admin.UserDelete)
				})

				r.Get("/settings", d.Admin.SettingsPage)
				r.Post("/settings", d.Admin.SettingsSave)
			})
		})
	})

	// Public site.
	r.Get("/", d.Public.Home)
	r.Get("/kurs", d.Public.Courses)
	r.Get("/kurs/{slug}", d.Public.CourseDetail)
	r.Get("/arkiv", d.Public.Archive)
	r.Get("/arkiv/{id}", d.Public.ArchiveDetail)
	r.Get("/kontakt", d.Public.InquiryPage)
	r.With(d.InquiryLimiter.Middleware).Post("/kontakt", d.Public.InquirySubmit)

	// Legal pages live at the top level (/personvern, /vilkar, ...).
	r.Get("/{slug}", d.Public.Legal)

	r.NotFound(d.Public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
