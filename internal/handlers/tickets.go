// tickets.go
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
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/utils"
	"go.uber.org/zap"
)

// TicketHandler handles the work ticket and consultant ticket routes.
// The collection comes from the route group (middleware.TicketKind).
type TicketHandler struct {
	Portal *services.Portal
	Logger *zap.Logger
}

// StatusUpdate is the body of a ticket PATCH
type StatusUpdate struct {
	Status models.TicketStatus `json:"status"`
}

// ReturnRequest is the body of a ticket return
type ReturnRequest struct {
	TicketID string `json:"ticketId" form:"ticketId"`
}

// ListTickets handles GET /api/{kind}
// @Summary List tickets
// @Description List every ticket of a collection
// @Tags Tickets
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Success 200 {array} models.Ticket
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{kind} [get]
func (h *TicketHandler) ListTickets(c *fiber.Ctx) error {
	kind := middleware.KindFrom(c)
	tickets, err := h.Portal.ListTickets(c.UserContext(), kind)
	if err != nil {
		return respondError(c, h.Logger, "fetch "+string(kind), err)
	}
	return c.Status(fiber.StatusOK).JSON(tickets)
}

// CreateTicket handles POST /api/{kind}
// @Summary Create a ticket
// @Tags Tickets
// @Accept json
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param ticket body services.TicketInput true "Ticket"
// @Success 201 {object} models.Ticket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{kind} [post]
func (h *TicketHandler) CreateTicket(c *fiber.Ctx) error {
	var in services.TicketInput
	if err := c.BodyParser(&in); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "invalid_input")
	}
	ticket, err := h.Portal.CreateTicket(c.UserContext(), middleware.KindFrom(c), in)
	if err != nil {
		return respondError(c, h.Logger, "create ticket", err)
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// GetTicket handles GET /api/{kind}/:id
// @Summary Get a ticket
// @Tags Tickets
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param id path string true "Ticket ID"
// @Success 200 {object} models.Ticket
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{kind}/{id} [get]
func (h *TicketHandler) GetTicket(c *fiber.Ctx) error {
	ticket, err := h.Portal.GetTicket(c.UserContext(), middleware.KindFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.Logger, "fetch ticket", err)
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

// UpdateTicketStatus handles PATCH /api/{kind}/:id
// @Summary Change a ticket status
// @Description Consultant tickets moving to paid also record the payment on the job
// @Tags Tickets
// @Accept json
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param id path string true "Ticket ID"
// @Param update body StatusUpdate true "New status"
// @Success 200 {object} models.Ticket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{kind}/{id} [patch]
func (h *TicketHandler) UpdateTicketStatus(c *fiber.Ctx) error {
	var body StatusUpdate
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "invalid_input")
	}
	if body.Status == "" {
		return missing(c, "status")
	}
	ticket, err := h.Portal.UpdateStatus(c.UserContext(), middleware.KindFrom(c), c.Params("id"), body.Status)
	if err != nil {
		return respondError(c, h.Logger, "update ticket", err)
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

// DeleteTicket handles DELETE /api/{kind}/:id
// @Summary Delete a ticket
// @Tags Tickets
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param id path string true "Ticket ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{kind}/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.Portal.DeleteTicket(c.UserContext(), middleware.KindFrom(c), id); err != nil {
		return respondError(c, h.Logger, "delete ticket", err)
	}
	return utils.MessageResponse(c, fmt.Sprintf("Ticket '%s' deleted", id))
}

// UploadDocument handles POST /api/{kind}/upload
// @Summary Upload a ticket's completed document
// @Description Stages the file and marks the ticket completed. The job is not modified.
// @Tags Tickets
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param ticketId formData string true "Ticket ID"
// @Param file formData file true "Completed document"
// @Success 200 {object} models.Ticket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 413 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{kind}/upload [post]
func (h *TicketHandler) UploadDocument(c *fiber.Ctx) error {
	ticketID := c.FormValue("ticketId")
	if ticketID == "" {
		return missing(c, "ticketId")
	}
	file, closer, err := formFile(c, "file")
	if err != nil {
		return respondError(c, h.Logger, "upload document", err)
	}
	defer closer.Close()

	ticket, err := h.Portal.Upload(c.UserContext(), middleware.KindFrom(c), ticketID, file)
	if err != nil {
		return respondError(c, h.Logger, "upload document", err)
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

// ReturnDocument handles POST /api/{kind}/return
// @Summary Return a ticket's document to the client
// @Description Stamps returnedAt on the ticket document and its metadata entry
// @Tags Tickets
// @Accept json
// @Produce json
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param request body ReturnRequest true "Ticket to return"
// @Success 200 {object} models.Ticket
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /{kind}/return [post]
func (h *TicketHandler) ReturnDocument(c *fiber.Ctx) error {
	var body ReturnRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.ErrorResponse(c, "Invalid request body", fiber.StatusBadRequest, "invalid_input")
	}
	if body.TicketID == "" {
		return missing(c, "ticketId")
	}
	ticket, err := h.Portal.Return(c.UserContext(), middleware.KindFrom(c), body.TicketID)
	if err != nil {
		return respondError(c, h.Logger, "return document", err)
	}
	return c.Status(fiber.StatusOK).JSON(ticket)
}

// DownloadDocument handles GET /api/{kind}/:id/document
// @Summary Download a ticket's completed document
// @Tags Tickets
// @Produce octet-stream
// @Param kind path string true "Ticket collection" Enums(work-tickets, consultant-tickets)
// @Param id path string true "Ticket ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /{kind}/{id}/document [get]
func (h *TicketHandler) DownloadDocument(c *fiber.Ctx) error {
	download, err := h.Portal.OpenTicketDocument(c.UserContext(), middleware.KindFrom(c), c.Params("id"))
	if err != nil {
		return respondError(c, h.Logger, "download document", err)
	}
	return sendDownload(c, download)
}
