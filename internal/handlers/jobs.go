// jobs.go
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
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/middleware"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/utils"
	"go.uber.org/zap"
)

// JobHandler handles job, job document and purchase routes
type JobHandler struct {
	Portal *services.Portal
	Logger *zap.Logger
}

// PurchaseRequest is the body of a pre-prepared assessment purchase
type PurchaseRequest struct {
	Assessment string `json:"assessment"`
}

// ListJobs handles GET /api/jobs
// @Summary List jobs
// @Tags Jobs
// @Produce json
// @Success 200 {array} models.Job
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *fiber.Ctx) error {
	jobs, err := h.Portal.ListJobs(c.UserContext())
	if err != nil {
		return respondError(c, h.Logger, "fetch jobs", err)
	}
	return c.Status(fiber.StatusOK).JSON(jobs)
}

// CreateJob handles POST /api/jobs
// @Summary Create a job
// @Tags Jobs
// @Accept json
// @Produce json
// @Param job body services.JobInput true "Job"
// @Success 201 {object} models.Job
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *fiber.Ctx) error {
	var in services.JobInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "invalid_input")
	}
	job, err := h.Portal.CreateJob(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.Logger, "create job", err)
	}
	return c.Status(fiber.StatusCreated).JSON(job)
}

// GetJob handles GET /api/jobs/:jobId
// @Summary Get a job
// @Tags Jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId} [get]
func (h *JobHandler) GetJob(c *fiber.Ctx) error {
	job, err := h.Portal.GetJob(c.UserContext(), c.Params("jobId"))
	if err != nil {
		return respondError(c, h.Logger, "fetch job", err)
	}
	return c.Status(fiber.StatusOK).JSON(job)
}

// PatchJob handles PATCH /api/jobs/:jobId
// @Summary Update a job
// @Description Applies a validated partial update. Unknown fields and assessment kinds are rejected.
// @Tags Jobs
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param patch body services.JobPatch true "Partial update"
// @Success 200 {object} models.Job
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId} [patch]
func (h *JobHandler) PatchJob(c *fiber.Ctx) error {
	patch, err := services.ParseJobPatch(c.Body())
	if err != nil {
		return respondError(c, h.Logger, "update job", err)
	}
	job, err := h.Portal.PatchJob(c.UserContext(), c.Params("jobId"), patch)
	if err != nil {
		return respondError(c, h.Logger, "update job", err)
	}
	return c.Status(fiber.StatusOK).JSON(job)
}

// DeleteJob handles DELETE /api/jobs/:jobId
// @Summary Delete a job
// @Description Removes the job record and its document directory
// @Tags Jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId} [delete]
func (h *JobHandler) DeleteJob(c *fiber.Ctx) error {
	id := c.Params("jobId")
	if err := h.Portal.DeleteJob(c.UserContext(), id); err != nil {
		return respondError(c, h.Logger, "delete job", err)
	}
	return utils.MessageResponse(c, fmt.Sprintf("Job '%s' deleted", id))
}

// UploadDocument handles POST /api/jobs/:jobId/documents
// @Summary Upload a job document
// @Tags Jobs
// @Accept multipart/form-data
// @Produce json
// @Param jobId path string true "Job ID"
// @Param file formData file true "Document"
// @Param assessmentKind formData string false "Assessment the document belongs to"
// @Success 200 {object} services.JobDocument
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 413 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId}/documents [post]
func (h *JobHandler) UploadDocument(c *fiber.Ctx) error {
	file, closer, err := formFile(c, "file")
	if err != nil {
		return respondError(c, h.Logger, "upload document", err)
	}
	defer closer.Close()

	result, err := h.Portal.UploadJobDocument(c.UserContext(), c.Params("jobId"), file, c.FormValue("assessmentKind"))
	if err != nil {
		return respondError(c, h.Logger, "upload document", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// DownloadDocument handles GET /api/jobs/:jobId/documents/:fileName
// @Summary Download a job document
// @Tags Jobs
// @Produce octet-stream
// @Param jobId path string true "Job ID"
// @Param fileName path string true "Stored file name"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId}/documents/{fileName} [get]
func (h *JobHandler) DownloadDocument(c *fiber.Ctx) error {
	jobID, err := pathParam(c, "jobId")
	if err != nil {
		return respondError(c, h.Logger, "download document", err)
	}
	fileName, err := pathParam(c, "fileName")
	if err != nil {
		return respondError(c, h.Logger, "download document", err)
	}
	return h.download(c, jobID, fileName)
}

// Download handles GET /api/download?jobId=&fileName=
// @Summary Download a job document by query
// @Tags Jobs
// @Produce octet-stream
// @Param jobId query string true "Job ID"
// @Param fileName query string true "Stored file name"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /download [get]
func (h *JobHandler) Download(c *fiber.Ctx) error {
	jobID, fileName := c.Query("jobId"), c.Query("fileName")
	if jobID == "" {
		return missing(c, "jobId")
	}
	if fileName == "" {
		return missing(c, "fileName")
	}
	return h.download(c, jobID, fileName)
}

func (h *JobHandler) download(c *fiber.Ctx, jobID, fileName string) error {
	download, err := h.Portal.OpenJobDocument(c.UserContext(), jobID, fileName)
	if err != nil {
		return respondError(c, h.Logger, "download document", err)
	}
	return sendDownload(c, download)
}

// Deliverables handles GET /api/jobs/:jobId/deliverables
// @Summary List returned ticket documents of a job
// @Tags Jobs
// @Produce json
// @Param jobId path string true "Job ID"
// @Success 200 {array} models.Deliverable
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId}/deliverables [get]
func (h *JobHandler) Deliverables(c *fiber.Ctx) error {
	deliverables, err := h.Portal.Deliverables(c.UserContext(), c.Params("jobId"))
	if err != nil {
		return respondError(c, h.Logger, "fetch deliverables", err)
	}
	return c.Status(fiber.StatusOK).JSON(deliverables)
}

// Purchase handles POST /api/jobs/:jobId/:variant/purchase
// @Summary Purchase a pre-prepared assessment for a job
// @Tags Purchases
// @Accept json
// @Produce json
// @Param jobId path string true "Job ID"
// @Param variant path string true "Catalog" Enums(pre-prepared-assessments, pre-prepared-initial-assessments, kb-development-application-assessments)
// @Param request body PurchaseRequest true "Catalog assessment to purchase"
// @Success 200 {object} services.PurchaseResult
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /jobs/{jobId}/{variant}/purchase [post]
func (h *JobHandler) Purchase(c *fiber.Ctx) error {
	var body PurchaseRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "invalid_input")
	}
	if body.Assessment == "" {
		return missing(c, "assessment")
	}
	result, err := h.Portal.Purchase(c.UserContext(), middleware.VariantFrom(c), c.Params("jobId"), body.Assessment)
	if err != nil {
		return respondError(c, h.Logger, "purchase assessment", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
