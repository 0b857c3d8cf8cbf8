// Command seed loads the hospital dataset into PostgreSQL and, when
// configured, the Typesense search index. It is idempotent: hospitals
// that already exist are skipped.
package main

import (
	"context"
	"os"
	"time"

	"github.com/medbridge360/backend/internal/adapters/database"
	"github.com/medbridge360/backend/internal/adapters/search"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/repositories"
	"github.com/medbridge360/backend/internal/infrastructure/clients/postgres"
	"github.com/medbridge360/backend/internal/infrastructure/clients/typesense"
	"github.com/medbridge360/backend/internal/infrastructure/observability"
	"github.com/medbridge360/backend/internal/seed"
	"github.com/medbridge360/backend/pkg/config"
	apperrors "github.com/medbridge360/backend/pkg/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}

	observability.InitLogger("medbridge-seed", cfg.Env)
	logger := observability.GetLogger()

	if !cfg.Database.Enabled {
		logger.Fatal().Msg("DB_ENABLED must be true to seed PostgreSQL")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to PostgreSQL")
	}
	defer pgClient.Close()

	var searchRepo repositories.HospitalSearchRepository
	if cfg.Typesense.URL != "" {
		typesenseClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			logger.Warn().Err(err).Msg("Typesense unavailable, seeding database only")
		} else {
			adapter := search.NewTypesenseAdapter(typesenseClient)
			if err := adapter.InitSchema(context.Background()); err != nil {
				logger.Fatal().Err(err).Msg("failed to init Typesense schema")
			}
			searchRepo = adapter
		}
	}

	catalog := services.NewCatalogService(database.NewHospitalAdapter(pgClient), searchRepo)

	ctx := context.Background()
	created, skipped := 0, 0
	for _, hospital := range seed.Hospitals(time.Now().UTC()) {
		err := catalog.Create(ctx, hospital)
		switch {
		case err == nil:
			created++
			logger.Info().Str("hospital", hospital.Name).Msg("seeded")
		case apperrors.IsType(err, apperrors.ErrorTypeConflict):
			skipped++
		default:
			logger.Fatal().Err(err).Str("hospital", hospital.Name).Msg("seeding failed")
		}
	}

	logger.Info().Int("created", created).Int("skipped", skipped).Msg("seeding complete")
}
