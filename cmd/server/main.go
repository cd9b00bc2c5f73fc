// main.go
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

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/localnerve/planning-portal/internal/app"
	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/logging"
	"go.uber.org/zap"

	_ "github.com/localnerve/planning-portal/docs/api" // Swagger docs
)

// @title Planning Portal API
// @version 1.0.0
// @description Ticket to job document delivery for the planning portal
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/planning-portal
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	portal, err := app.New(ctx, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to start", zap.Error(err))
	}
	defer portal.Close()

	// Replay dual writes interrupted by a previous crash
	ctx, cancel = context.WithTimeout(context.Background(), time.Minute)
	report, err := portal.Portal.Recover(ctx)
	cancel()
	if err != nil {
		logger.Error("intent recovery failed", zap.Error(err))
	} else if report.Replayed+report.Discarded+report.Failed > 0 {
		logger.Info("intent recovery finished",
			zap.Int("replayed", report.Replayed),
			zap.Int("discarded", report.Discarded),
			zap.Int("failed", report.Failed))
	}

	server := portal.Server()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logger.Info("gracefully shutting down")
		_ = server.Shutdown()
	}()

	// Start server
	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("store", cfg.StoreType),
		zap.String("locks", cfg.LockBackend))
	if err := server.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	logger.Info("server stopped")
}
