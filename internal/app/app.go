// app.go
//
// Planning portal ticket to job document delivery service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of planning-portal.
// planning-portal is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// planning-portal is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with planning-portal.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/database"
	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/localnerve/planning-portal/internal/notify"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/store"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds the wired dependencies shared by the server and the admin CLI.
type App struct {
	Config *config.Config
	Logger *zap.Logger
	Files  *documents.Store
	Stores store.Stores
	Portal *services.Portal
	DB     *gorm.DB
	Redis  *redis.Client
}

// New connects the configured backends and builds the portal.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	logger = logging.OrNop(logger)
	a := &App{
		Config: cfg,
		Logger: logger,
		Files:  documents.New(cfg.FilesDir(), cfg.MaxUploadBytes, logger),
	}

	var locker store.Locker = store.NewLocalLocker()
	if cfg.LockBackend == "redis" {
		a.Redis = database.NewRedis(cfg)
		if err := database.PingRedis(ctx, a.Redis); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		locker = store.NewRedisLocker(a.Redis, time.Duration(cfg.LockTTLMillis)*time.Millisecond, logger)
	}

	switch cfg.StoreType {
	case "sql":
		db, err := database.Connect(cfg, logger)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.DB = db
		if err := database.AutoMigrate(db); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		a.Stores = store.NewSQLStores(db, a.Files)
	default:
		a.Stores = store.NewJSONStores(cfg.DataDir, locker, a.Files)
	}

	var publisher notify.Publisher = notify.NopPublisher{}
	if cfg.SNSTopicARN != "" {
		sns, err := notify.NewSNSPublisher(ctx, cfg.AWSRegion, cfg.SNSTopicARN)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to configure notifications: %w", err)
		}
		publisher = sns
		logger.Info("publishing delivery events", zap.String("topic", cfg.SNSTopicARN))
	}

	a.Portal = services.New(a.Stores, a.Files, publisher, logger)
	a.Portal.BasePath = cfg.PublicBasePath
	return a, nil
}

// HealthDeps returns what the health check probes for this configuration.
func (a *App) HealthDeps() services.HealthDeps {
	deps := services.HealthDeps{DataDir: a.Config.DataDir, DB: a.DB, Logger: a.Logger}
	if a.Redis != nil {
		deps.Redis = a.Redis
	}
	return deps
}

// Close releases the database and redis connections.
func (a *App) Close() error {
	var errs []error
	if a.DB != nil {
		errs = append(errs, database.Close(a.DB))
	}
	if a.Redis != nil {
		errs = append(errs, a.Redis.Close())
	}
	return errors.Join(errs...)
}
