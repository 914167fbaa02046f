package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medcoop/clinic-api/internal/config"
	"github.com/medcoop/clinic-api/internal/counter"
	authHandler "github.com/medcoop/clinic-api/internal/handler/auth"
	doctorHandler "github.com/medcoop/clinic-api/internal/handler/doctor"
	healthHandler "github.com/medcoop/clinic-api/internal/handler/health"
	medicineHandler "github.com/medcoop/clinic-api/internal/handler/medicine"
	patientHandler "github.com/medcoop/clinic-api/internal/handler/patient"
	reportHandler "github.com/medcoop/clinic-api/internal/handler/report"
	visitHandler "github.com/medcoop/clinic-api/internal/handler/visit"
	"github.com/medcoop/clinic-api/internal/middleware"
	"github.com/medcoop/clinic-api/internal/repository/postgres"
	"github.com/medcoop/clinic-api/internal/router"
	"github.com/medcoop/clinic-api/internal/session"
	authService "github.com/medcoop/clinic-api/internal/service/auth"
	doctorService "github.com/medcoop/clinic-api/internal/service/doctor"
	medicineService "github.com/medcoop/clinic-api/internal/service/medicine"
	patientService "github.com/medcoop/clinic-api/internal/service/patient"
	reportService "github.com/medcoop/clinic-api/internal/service/report"
	visitService "github.com/medcoop/clinic-api/internal/service/visit"
	pkgauth "github.com/medcoop/clinic-api/pkg/auth"
	"github.com/medcoop/clinic-api/pkg/logger"
	"github.com/medcoop/clinic-api/pkg/metrics"
	"github.com/medcoop/clinic-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	log.Logger = logger.New(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db, "migrations"); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	medicineRepo := postgres.NewMedicineRepository(db)
	visitRepo := postgres.NewVisitRepository(db)
	reportRepo := postgres.NewReportRepository(db)

	// External collaborators
	counters := counter.NewRedisCounter(redisClient)
	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)
	signer := pkgauth.NewHMACSigner(cfg.Session.Secret, cfg.Session.TTL)
	hasher := security.NewBcryptHasher(0)

	// Services
	authSvc := authService.NewService(userRepo, sessions, counters, hasher)
	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	medicineSvc := medicineService.NewService(medicineRepo)
	visitSvc := visitService.NewService(visitRepo)
	reportSvc := reportService.NewService(visitRepo, patientRepo, medicineRepo, reportRepo)

	guard := middleware.NewGuard(sessions, signer, cfg.Session.CookieName)
	m := metrics.New("clinic_api")

	// Handlers
	authH := authHandler.NewHandler(authSvc, signer, counters, guard, authHandler.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL.Seconds()),
		Secure: cfg.Session.Secure,
	}, m)
	patientH := patientHandler.NewHandler(patientSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	medicineH := medicineHandler.NewHandler(medicineSvc)
	visitH := visitHandler.NewHandler(visitSvc)
	reportH := reportHandler.NewHandler(reportSvc)
	healthH := healthHandler.NewHandler(db, redisClient)

	r := router.NewRouter(guard, authH, patientH, doctorH, medicineH, visitH, reportH, healthH, m,
		router.Config{
			LoginRateLimit: rate.Limit(cfg.Login.RateLimit),
			LoginRateBurst: cfg.Login.RateBurst,
		})
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
