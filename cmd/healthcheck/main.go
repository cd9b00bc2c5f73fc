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
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/localnerve/planning-portal/internal/app"
	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Connect the configured backends (database, redis)
	portal, err := app.New(ctx, cfg, nil)
	if err != nil {
		report(services.HealthCheckResult{Status: "unhealthy", ErrorMessage: err.Error()})
	}
	defer portal.Close()

	// Perform health check
	result := services.HealthCheck(ctx, portal.HealthDeps())

	// The API server should also be accepting connections
	if err := utils.PingServer(cfg.Port); err != nil {
		result.Status = "unhealthy"
		if result.Details == nil {
			result.Details = map[string]string{}
		}
		result.Details["server_error"] = err.Error()
		if result.ErrorMessage == "" {
			result.ErrorMessage = "Server ping failed: " + err.Error()
		}
	}

	report(result)
}

// report prints the result as JSON and exits with the matching code
func report(result services.HealthCheckResult) {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal health check result: %v", err)
	}

	fmt.Println(string(output))

	// Exit with appropriate code
	if result.Status != "healthy" {
		os.Exit(1)
	}
	os.Exit(0)
}
