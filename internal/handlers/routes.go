// routes.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/localnerve/planning-portal/internal/middleware"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/services"
	"go.uber.org/zap"
)

// Register mounts every API route on api (the /api group)
func Register(api fiber.Router, portal *services.Portal, health services.HealthDeps, logger *zap.Logger) {
	logger = logging.OrNop(logger)
	tickets := &TicketHandler{Portal: portal, Logger: logger}
	jobs := &JobHandler{Portal: portal, Logger: logger}
	catalog := &CatalogHandler{Portal: portal, Logger: logger}
	healthHandler := &HealthHandler{Deps: health}

	api.Get("/health", healthHandler.Health)

	for _, kind := range models.TicketKinds {
		group := api.Group("/"+string(kind), middleware.TicketKind(kind))
		group.Get("/", tickets.ListTickets)
		group.Post("/", tickets.CreateTicket)
		group.Post("/upload", tickets.UploadDocument)
		group.Post("/return", tickets.ReturnDocument)
		group.Get("/:id", tickets.GetTicket)
		group.Patch("/:id", tickets.UpdateTicketStatus)
		group.Delete("/:id", tickets.DeleteTicket)
		group.Get("/:id/document", tickets.DownloadDocument)
	}

	api.Get("/jobs", jobs.ListJobs)
	api.Post("/jobs", jobs.CreateJob)
	api.Get("/jobs/:jobId", jobs.GetJob)
	api.Patch("/jobs/:jobId", jobs.PatchJob)
	api.Delete("/jobs/:jobId", jobs.DeleteJob)
	api.Post("/jobs/:jobId/documents", jobs.UploadDocument)
	api.Get("/jobs/:jobId/documents/:fileName", jobs.DownloadDocument)
	api.Get("/jobs/:jobId/deliverables", jobs.Deliverables)
	api.Post("/jobs/:jobId/:variant/purchase", middleware.CatalogVariant(), jobs.Purchase)
	api.Get("/download", jobs.Download)

	api.Get("/catalog/:variant", middleware.CatalogVariant(), catalog.ListCatalog)
	api.Post("/catalog/:variant", middleware.CatalogVariant(), catalog.CreateCatalogAssessment)
	api.Get("/catalog/:variant/:id/file", middleware.CatalogVariant(), catalog.DownloadFile)
}
