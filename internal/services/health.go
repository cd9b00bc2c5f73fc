// health.go
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

package services

import (
	"context"
	"fmt"
	"os"

	"github.com/localnerve/planning-portal/internal/database"
	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Storage      string            `json:"storage"`
	Database     string            `json:"database,omitempty"`
	Locks        string            `json:"locks,omitempty"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// HealthDeps are the dependencies a health check probes. DB and Redis are optional.
type HealthDeps struct {
	DataDir string
	DB      *gorm.DB
	Redis   redis.UniversalClient
	Logger  *zap.Logger
}

func (r *HealthCheckResult) fail(component, detail string, err error) {
	r.Status = "unhealthy"
	r.Details[detail] = err.Error()
	msg := fmt.Sprintf("%s: %v", component, err)
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	} else {
		r.ErrorMessage += "; " + msg
	}
}

// HealthCheck performs a comprehensive health check of the service
func HealthCheck(ctx context.Context, deps HealthDeps) HealthCheckResult {
	log := logging.OrNop(deps.Logger)
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Check the data directory accepts writes
	if err := probeWritable(deps.DataDir); err != nil {
		result.Storage = "unwritable"
		result.fail("Data directory check failed", "storage_error", err)
		log.Warn("health check failed - data directory", zap.Error(err))
	} else {
		result.Storage = "ok"
		result.Details["data_dir"] = deps.DataDir
	}

	// Check database connectivity
	if deps.DB != nil {
		if err := database.Ping(ctx, deps.DB); err != nil {
			result.Database = "unreachable"
			result.fail("Database ping failed", "database_ping_error", err)
			log.Warn("health check failed - database ping", zap.Error(err))
		} else {
			result.Database = "ok"
			result.Details["database_type"] = deps.DB.Dialector.Name()
		}
	}

	// Check Redis connectivity
	if deps.Redis != nil {
		if err := database.PingRedis(ctx, deps.Redis); err != nil {
			result.Locks = "unreachable"
			result.fail("Redis ping failed", "redis_error", err)
			log.Warn("health check failed - redis ping", zap.Error(err))
		} else {
			result.Locks = "ok"
		}
	} else {
		result.Locks = "local"
	}

	if result.Status == "healthy" {
		log.Debug("health check passed - all systems operational")
	}
	return result
}

func probeWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
