// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the course portal server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kursportal/internal/cache"
	"kursportal/internal/config"
	"kursportal/internal/database"
	"kursportal/internal/handlers"
	"kursportal/internal/icon"
	"kursportal/internal/middleware"
	"kursportal/internal/render"
	"kursportal/internal/router"
	"kursportal/internal/session"
	"kursportal/internal/storage"
	"kursportal/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL and run pending migrations.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (sessions + full-page cache).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// In non-development environments, mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// In dev mode, templates load assets from CDN; in production they use
	// compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores.
	userStore := store.NewUserStore(db)
	courseStore := store.NewCourseStore(db)
	categoryStore := store.NewCategoryStore(db)
	runStore := store.NewCourseRunStore(db)
	leadStore := store.NewLeadStore(db)
	reviewStore := store.NewReviewStore(db)
	faqStore := store.NewFAQStore(db)
	instructorStore := store.NewInstructorStore(db)
	teamStore := store.NewTeamMemberStore(db)
	heroStore := store.NewHeroSlideStore(db)
	legalStore := store.NewLegalPageStore(db)
	settingStore := store.NewSiteSettingStore(db)

	// S3-compatible object storage is optional. Without it the app runs
	// fine but category icon uploads are disabled.
	var storageClient *storage.Client
	var iconPipeline *icon.Pipeline
	if cfg.S3Endpoint != "" && cfg.S3AccessKey != "" {
		storageClient, err = storage.New(
			cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey,
			cfg.S3Bucket, cfg.S3PublicURL,
		)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		iconPipeline = icon.NewPipeline(storageClient, categoryStore)
		slog.Info("s3 storage connected",
			"endpoint", cfg.S3Endpoint,
			"bucket", cfg.S3Bucket,
		)
	} else {
		slog.Warn("s3 storage not configured, category icon uploads disabled")
	}

	// Full-page HTML cache in Valkey for the public site.
	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Rate limiters for the login and inquiry forms.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	defer loginLimiter.Stop()
	inquiryLimiter := middleware.NewRateLimiter(5, time.Minute)
	defer inquiryLimiter.Stop()

	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	adminHandlers := handlers.NewAdmin(handlers.AdminDeps{
		Renderer:        renderer,
		Sessions:        sessionStore,
		CourseStore:     courseStore,
		CategoryStore:   categoryStore,
		RunStore:        runStore,
		LeadStore:       leadStore,
		ReviewStore:     reviewStore,
		FAQStore:        faqStore,
		InstructorStore: instructorStore,
		TeamStore:       teamStore,
		HeroStore:       heroStore,
		LegalStore:      legalStore,
		UserStore:       userStore,
		SettingStore:    settingStore,
		StorageClient:   storageClient,
		IconPipeline:    iconPipeline,
		PageCache:       pageCache,
	})
	publicHandlers := handlers.NewPublic(handlers.PublicDeps{
		Renderer:      renderer,
		CourseStore:   courseStore,
		CategoryStore: categoryStore,
		RunStore:      runStore,
		ReviewStore:   reviewStore,
		FAQStore:      faqStore,
		TeamStore:     teamStore,
		HeroStore:     heroStore,
		LegalStore:    legalStore,
		LeadStore:     leadStore,
		SettingStore:  settingStore,
		PageCache:     pageCache,
	})

	r := router.New(router.Deps{
		SessionStore:   sessionStore,
		Auth:           authHandlers,
		Admin:          adminHandlers,
		Public:         publicHandlers,
		LoginLimiter:   loginLimiter,
		InquiryLimiter: inquiryLimiter,
		Secure:         secureCookies,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
