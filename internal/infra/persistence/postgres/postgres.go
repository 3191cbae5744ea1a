package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"carhub/config"
	"carhub/internal/domain/lifecycle"
	"carhub/internal/errors"
	"carhub/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval    = 5 * time.Second
	poolWaitWarnDuration = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary/replica GORM connection and ties its lifetime to the fx app.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config section is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes go through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	autoMigrate := params.Config.CarStore != nil && params.Config.CarStore.AutoMigrate
	stopMonitor := func() {}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if autoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
			}

			monitorCtx, cancelMonitor := context.WithCancel(context.Background())
			stopMonitor = cancelMonitor
			go watchPoolWaits(monitorCtx, params.Logger, sqlDB, poolStatsInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// userSchema adds the users foreign keys for AutoMigrate. The query models stay
// association-free so gen emits plain field accessors.
type userSchema struct {
	model.UserModel

	Authentications []model.AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []model.RefreshTokenModel   `gorm:"foreignKey:UserID"`
	Cars            []model.CarModel            `gorm:"foreignKey:OwnerID"`
}

func (userSchema) TableName() string {
	return model.UserModel{}.TableName()
}

// Migrate creates or updates the tables backing users, credentials, sessions and cars.
func Migrate(ctx context.Context, db *gorm.DB) error {
	err := db.WithContext(ctx).AutoMigrate(
		&userSchema{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.CarModel{},
	)

	return errors.Wrap(err, "failed to migrate PostgreSQL schema")
}

// watchPoolWaits reports connection-pool contention observed since the previous tick.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		stats := sqlDB.Stats()
		waits := stats.WaitCount - last.WaitCount
		waited := stats.WaitDuration - last.WaitDuration
		last = stats

		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= poolWaitWarnDuration {
			level = slog.LevelWarn
		}

		logger.LogAttrs(ctx, level, "Postgres pool wait",
			slog.Int64("waits", waits),
			slog.Duration("waited", waited),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("openConns", stats.OpenConnections),
			slog.Int("inUseConns", stats.InUse),
			slog.Int("maxOpenConns", stats.MaxOpenConnections),
		)
	}
}
