package main

import (
	"context"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/medcoop/clinic-api/internal/config"
	"github.com/medcoop/clinic-api/internal/model"
	"github.com/medcoop/clinic-api/internal/repository/postgres"
	"github.com/medcoop/clinic-api/pkg/security"
)

// seedConfig is read entirely from the environment so the tool can run in
// CI and container entrypoints without a config file.
type seedConfig struct {
	DBHost         string `envconfig:"DB_HOST" default:"localhost"`
	DBPort         int    `envconfig:"DB_PORT" default:"5432"`
	DBUser         string `envconfig:"DB_USER" default:"clinic"`
	DBPassword     string `envconfig:"DB_PASSWORD" default:"clinic"`
	DBName         string `envconfig:"DB_NAME" default:"clinic"`
	DBSSLMode      string `envconfig:"DB_SSLMODE" default:"disable"`
	MigrationsDir  string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
	AdminPassword  string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	DoctorPassword string `envconfig:"DOCTOR_PASSWORD" default:"doctor123"`
	WithDemoData   bool   `envconfig:"WITH_DEMO_DATA" default:"true"`
}

func main() {
	var cfg seedConfig
	if err := envconfig.Process("seed", &cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to read environment")
	}

	db, err := postgres.NewDB(config.DatabaseConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		Name:     cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if err := postgres.Migrate(db, cfg.MigrationsDir); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	hasher := security.NewBcryptHasher(0)
	users := postgres.NewUserRepository(db)

	seedUser := func(username, password, role, name string) {
		hash, err := hasher.Hash(password)
		if err != nil {
			log.Fatal().Err(err).Str("username", username).Msg("failed to hash password")
		}
		err = users.Create(ctx, &model.User{
			Username:     username,
			PasswordHash: hash,
			Role:         role,
			Name:         name,
			IsActive:     true,
		})
		if err != nil {
			log.Warn().Err(err).Str("username", username).Msg("skipping user")
			return
		}
		log.Info().Str("username", username).Str("role", role).Msg("created user")
	}

	seedUser("admin", cfg.AdminPassword, model.RoleAdmin, "System Administrator")
	seedUser("doctor", cfg.DoctorPassword, model.RoleDoctor, "Dr. Ivanov")

	if cfg.WithDemoData {
		seedDemoData(ctx, db)
	}

	log.Info().Msg("seeding complete")
}
