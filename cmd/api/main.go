package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/hkaraoglu/ir-scheduler/internal/config"
	"github.com/hkaraoglu/ir-scheduler/internal/handler"
	appointmentHandler "github.com/hkaraoglu/ir-scheduler/internal/handler/appointment"
	authHandler "github.com/hkaraoglu/ir-scheduler/internal/handler/auth"
	catalogHandler "github.com/hkaraoglu/ir-scheduler/internal/handler/catalog"
	userHandler "github.com/hkaraoglu/ir-scheduler/internal/handler/user"
	"github.com/hkaraoglu/ir-scheduler/internal/middleware"
	"github.com/hkaraoglu/ir-scheduler/internal/repository/postgres"
	"github.com/hkaraoglu/ir-scheduler/internal/router"
	appointmentService "github.com/hkaraoglu/ir-scheduler/internal/service/appointment"
	authService "github.com/hkaraoglu/ir-scheduler/internal/service/auth"
	catalogService "github.com/hkaraoglu/ir-scheduler/internal/service/catalog"
	userService "github.com/hkaraoglu/ir-scheduler/internal/service/user"
	"github.com/hkaraoglu/ir-scheduler/pkg/auth"
	"github.com/hkaraoglu/ir-scheduler/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply schema")
	}

	// Repositories
	procedureRepo := postgres.NewProcedureRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryHours)
	catalogSvc := catalogService.NewService(procedureRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, catalogSvc, cfg.Scheduling.DefaultDurationMinutes)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher)
	userSvc := userService.NewService(userRepo, hasher)

	// Seed catalog and bootstrap admin before serving any request
	if err := catalogSvc.Seed(ctx, catalogService.DefaultProcedures); err != nil {
		log.Fatal().Err(err).Msg("failed to seed procedure catalog")
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123!"
	}
	if err := userSvc.SeedAdmin(ctx, "admin", adminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	// Handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler(db)

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(authSvc),
		catalogHandler.NewHandler(catalogSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		userHandler.NewHandler(userSvc),
		h,
		router.Config{
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
