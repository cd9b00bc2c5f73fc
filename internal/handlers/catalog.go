// catalog.go
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
	"github.com/localnerve/planning-portal/internal/middleware"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/utils"
	"go.uber.org/zap"
)

// CatalogHandler handles the admin-authored assessment catalogs
type CatalogHandler struct {
	Portal *services.Portal
	Logger *zap.Logger
}

// ListCatalog handles GET /api/catalog/:variant
// @Summary List a catalog
// @Tags Catalog
// @Produce json
// @Param variant path string true "Catalog" Enums(pre-prepared-assessments, pre-prepared-initial-assessments, kb-development-application-assessments)
// @Success 200 {array} models.CatalogAssessment
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/{variant} [get]
func (h *CatalogHandler) ListCatalog(c *fiber.Ctx) error {
	entries, err := h.Portal.ListCatalog(c.UserContext(), middleware.VariantFrom(c))
	if err != nil {
		return respondError(c, h.Logger, "fetch catalog", err)
	}
	return c.Status(fiber.StatusOK).JSON(entries)
}

// CreateCatalogAssessment handles POST /api/catalog/:variant
// @Summary Add an assessment to a catalog
// @Tags Catalog
// @Accept multipart/form-data
// @Produce json
// @Param variant path string true "Catalog" Enums(pre-prepared-assessments, pre-prepared-initial-assessments, kb-development-application-assessments)
// @Param title formData string true "Title"
// @Param section formData string false "Section"
// @Param content formData string false "Summary"
// @Param date formData string false "Date"
// @Param author formData string false "Author"
// @Param file formData file true "Assessment document"
// @Success 201 {object} models.CatalogAssessment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 413 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /catalog/{variant} [post]
func (h *CatalogHandler) CreateCatalogAssessment(c *fiber.Ctx) error {
	var in services.CatalogInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "invalid_input")
	}
	file, closer, err := formFile(c, "file")
	if err != nil {
		return respondError(c, h.Logger, "create catalog assessment", err)
	}
	defer closer.Close()

	entry, err := h.Portal.CreateCatalogAssessment(c.UserContext(), middleware.VariantFrom(c), in, file)
	if err != nil {
		return respondError(c, h.Logger, "create catalog assessment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// DownloadFile handles GET /api/catalog/:variant/:id/file
// @Summary Download a catalog assessment file
// @Tags Catalog
// @Produce octet-stream
// @Param variant path string true "Catalog" Enums(pre-prepared-assessments, pre-prepared-initial-assessments, kb-development-application-assessments)
// @Param id path string true "Assessment ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /catalog/{variant}/{id}/file [get]
func (h *CatalogHandler) DownloadFile(c *fiber.Ctx) error {
	download, err := h.Portal.OpenCatalogFile(c.UserContext(), middleware.VariantFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.Logger, "download catalog file", err)
	}
	return sendDownload(c, download)
}
