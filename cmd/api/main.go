package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/kcoproperties/leasing-api/internal/cache"
	"github.com/kcoproperties/leasing-api/internal/handlers"
	"github.com/kcoproperties/leasing-api/internal/mailer"
	"github.com/kcoproperties/leasing-api/internal/repository"
	"github.com/kcoproperties/leasing-api/internal/scheduler"
	"github.com/kcoproperties/leasing-api/internal/service"
	"github.com/kcoproperties/leasing-api/pkg/config"
	"github.com/kcoproperties/leasing-api/pkg/database"
	"github.com/kcoproperties/leasing-api/pkg/events"
	"github.com/kcoproperties/leasing-api/pkg/logger"
	mw "github.com/kcoproperties/leasing-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	redisCache := cache.NewRedisCache(cfg.Redis)
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		logger.Warn("Redis unavailable, property cache disabled", "error", err)
		redisCache = nil
	}

	var mail mailer.Service
	if cfg.Email.DevMode || cfg.Email.MailerSendKey == "" {
		logger.Warn("MAILERSEND_API_KEY not set or dev mode on, emails will be logged only")
		mail = mailer.NewDevMailer()
	} else {
		mail = mailer.NewMailer(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Repositories
	tourRepo := repository.NewTourRepository(pool)
	propertyRepo := repository.NewPropertyRepository(pool)
	unitRepo := repository.NewUnitRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	maintenanceRepo := repository.NewMaintenanceRepository(pool)
	leaseRepo := repository.NewLeaseRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	// Services
	var propertyCache service.PropertyCache
	if redisCache != nil {
		propertyCache = redisCache
	}
	tourService := service.NewTourService(tourRepo, propertyRepo, mail, eventBus, cfg)
	propertyService := service.NewPropertyService(propertyRepo, propertyCache)
	unitService := service.NewUnitService(unitRepo, propertyRepo)
	applicationService := service.NewApplicationService(applicationRepo, propertyRepo, eventBus)
	contactService := service.NewContactService(contactRepo, eventBus)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, propertyRepo, eventBus)
	leaseService := service.NewLeaseService(leaseRepo, propertyRepo)
	authService := service.NewAuthService(userRepo, cfg)

	// Owner notifications land on the bus; log them where an email or chat
	// integration would pick them up.
	if err := eventBus.Subscribe(events.NotifyOwner, func(msg *events.Message) {
		var n events.OwnerNotification
		if err := json.Unmarshal(msg.Data, &n); err != nil {
			logger.Error("Malformed owner notification", "error", err)
			return
		}
		logger.Info("Owner notification", "title", n.Title, "content", n.Content)
	}); err != nil {
		logger.Error("Failed to subscribe to owner notifications", "error", err)
	}

	h := handlers.New(tourService, propertyService, unitService, applicationService, contactService, maintenanceService, leaseService, authService, cfg)

	intakeLimiter := mw.NewRateLimiter(pool, mw.RateLimitConfig{
		Requests: 10,
		Window:   time.Minute,
		KeyFunc:  mw.PublicIntakeKeyFunc,
	})

	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("leasing-api"))
	r.Use(mw.Logging)
	r.Use(mw.CORS())
	r.Use(mw.Health)

	// Public routes
	r.Group(func(r chi.Router) {
		r.Get("/properties", h.ListProperties)
		r.Get("/properties/available", h.ListAvailableProperties)
		r.Get("/properties/{id}", h.GetProperty)
		r.Get("/properties/{id}/units", h.ListUnits)
		r.Get("/properties/{id}/units/available", h.ListAvailableUnits)
		r.Get("/properties/{id}/tours", h.ListToursByProperty)
		r.Get("/units/{id}", h.GetUnit)

		r.With(intakeLimiter.Middleware()).Post("/tours", h.ScheduleTour)
		r.With(intakeLimiter.Middleware()).Post("/applications", h.SubmitApplication)
		r.With(intakeLimiter.Middleware()).Post("/contact", h.SubmitContactMessage)

		r.Post("/auth/login", h.Login)
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(h.RequireJWT(""))
		r.Get("/auth/me", h.Me)
	})

	r.Route("/tenant", func(r chi.Router) {
		r.Use(h.RequireJWT("tenant"))
		r.Get("/lease", h.GetMyLease)
		r.Post("/maintenance", h.OpenMaintenanceRequest)
		r.Get("/maintenance", h.ListMyMaintenanceRequests)
	})

	// Admin routes
	r.Route("/admin", func(r chi.Router) {
		r.Use(h.RequireJWT("admin"))

		r.Post("/users", h.Register)

		r.Post("/properties", h.CreateProperty)
		r.Patch("/properties/{id}", h.UpdateProperty)
		r.Delete("/properties/{id}", h.DeleteProperty)
		r.Get("/properties/{id}/applications", h.ListApplicationsByProperty)

		r.Post("/units", h.CreateUnit)
		r.Patch("/units/{id}", h.UpdateUnit)
		r.Delete("/units/{id}", h.DeleteUnit)

		r.Get("/tours", h.ListTours)
		r.Get("/tours/{id}", h.GetTour)
		r.Patch("/tours/{id}/status", h.UpdateTourStatus)

		r.Get("/applications", h.ListApplications)
		r.Get("/applications/{id}", h.GetApplication)
		r.Patch("/applications/{id}/status", h.ReviewApplication)

		r.Get("/contact", h.ListContactMessages)
		r.Patch("/contact/{id}/status", h.UpdateContactStatus)

		r.Get("/leases", h.ListLeases)
		r.Get("/leases/{id}", h.GetLease)

		r.Get("/maintenance", h.ListMaintenanceRequests)
		r.Get("/maintenance/{id}", h.GetMaintenanceRequest)
		r.Patch("/maintenance/{id}", h.UpdateMaintenanceRequest)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sweeper := scheduler.New(tourRepo, tourService, cfg.Reminder.Interval, cfg.Reminder.Lookahead)

	runCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() error {
		logger.Info("Starting leasing API", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := sweeper.Start(gctx)
		if err == context.Canceled {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down leasing API...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Leasing API error", "error", err)
		os.Exit(1)
	}
}
