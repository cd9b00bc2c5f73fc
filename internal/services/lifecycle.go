// lifecycle.go
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
	"errors"

	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/metrics"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/notify"
	"github.com/localnerve/planning-portal/internal/types"
	"go.uber.org/zap"
)

// TicketInput is the body accepted when creating a ticket.
type TicketInput struct {
	ID             string              `json:"id"`
	JobID          string              `json:"jobId"`
	JobAddress     string              `json:"jobAddress"`
	TicketType     string              `json:"ticketType"`
	Category       string              `json:"category"`
	ConsultantID   string              `json:"consultantId"`
	ConsultantName string              `json:"consultantName"`
	Notes          string              `json:"notes"`
	Status         models.TicketStatus `json:"status"`
}

// CreateTicket adds a ticket to the kind's collection.
func (p *Portal) CreateTicket(ctx context.Context, kind models.TicketKind, in TicketInput) (models.Ticket, error) {
	if in.JobID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingRequiredField, "jobId")
	}
	if kind == models.ConsultantTickets && in.Category == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingRequiredField, "category")
	}
	if in.Status == "" {
		in.Status = models.StatusPending
	}
	if err := models.ValidateStatus(kind, in.Status); err != nil {
		return models.Ticket{}, err
	}
	if in.ID == "" {
		in.ID = p.NewID()
	}
	// ticket ids are embedded in staged file names
	if err := documents.ValidateName(in.ID); err != nil {
		return models.Ticket{}, err
	}
	if in.JobAddress == "" {
		if job, err := p.Jobs.Get(ctx, in.JobID); err == nil {
			in.JobAddress = job.Address
		}
	}

	ts := models.Timestamp(p.now())
	ticket := models.Ticket{
		ID:             in.ID,
		Kind:           kind,
		JobID:          in.JobID,
		JobAddress:     in.JobAddress,
		TicketType:     in.TicketType,
		Category:       in.Category,
		ConsultantID:   in.ConsultantID,
		ConsultantName: in.ConsultantName,
		Notes:          in.Notes,
		Status:         in.Status,
		CreatedAt:      ts,
		UpdatedAt:      ts,
	}
	if err := p.Tickets.Create(ctx, ticket); err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

func (p *Portal) ListTickets(ctx context.Context, kind models.TicketKind) ([]models.Ticket, error) {
	return p.Tickets.List(ctx, kind)
}

func (p *Portal) GetTicket(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error) {
	return p.Tickets.Get(ctx, kind, id)
}

// DeleteTicket removes the ticket, then its staged document and metadata entry if it can.
func (p *Portal) DeleteTicket(ctx context.Context, kind models.TicketKind, id string) error {
	ticket, err := p.Tickets.Delete(ctx, kind, id)
	if err != nil {
		return err
	}
	if doc := ticket.CompletedDocument; doc != nil {
		p.bestEffort("staged document cleanup", p.Files.Delete(documents.StagingScope(kind), doc.FileName),
			zap.String("ticketId", id), zap.String("file", doc.FileName))
	}
	p.bestEffort("metadata cleanup", p.Metadata.DeleteByTicket(ctx, id), zap.String("ticketId", id))
	return nil
}

// Upload stages a completed document for a ticket and marks the ticket completed.
// The job record is not touched.
func (p *Portal) Upload(ctx context.Context, kind models.TicketKind, ticketID string, file documents.File) (models.Ticket, error) {
	if ticketID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingRequiredField, "ticketId")
	}
	ticket, err := p.Tickets.Get(ctx, kind, ticketID)
	if err != nil {
		return models.Ticket{}, err
	}
	if ticket.JobID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingJobReference, "ticket %s", ticketID)
	}
	if err := models.CheckTransition(kind, ticket.Status, models.StatusCompleted); err != nil {
		return models.Ticket{}, err
	}
	original, err := documents.CleanOriginalName(file.OriginalName)
	if err != nil {
		return models.Ticket{}, err
	}
	file.OriginalName = original

	ref, err := p.Files.Put(ctx, documents.StagingScope(kind), documents.StagingName(ticket.ID, original), file)
	if err != nil {
		return models.Ticket{}, err
	}
	metrics.UploadedBytes.WithLabelValues("staging").Add(float64(ref.Size))

	var from models.TicketStatus
	var previous string
	updated, err := p.Tickets.Update(ctx, kind, ticketID, func(t *models.Ticket) error {
		if err := models.CheckTransition(kind, t.Status, models.StatusCompleted); err != nil {
			return err
		}
		from = t.Status
		if t.CompletedDocument != nil {
			previous = t.CompletedDocument.FileName
		}
		t.Status = models.StatusCompleted
		t.CompletedDocument = &models.CompletedDocument{
			FileName:     ref.FileName,
			OriginalName: ref.OriginalName,
			Type:         ref.Type,
			Size:         ref.Size,
			UploadedAt:   ref.UploadedAt,
		}
		t.UpdatedAt = ref.UploadedAt
		return nil
	})
	if err != nil {
		p.bestEffort("orphan document cleanup", p.Files.Delete(documents.StagingScope(kind), ref.FileName),
			zap.String("ticketId", ticketID), zap.String("file", ref.FileName))
		return models.Ticket{}, err
	}
	if previous != "" && previous != ref.FileName {
		p.bestEffort("superseded document cleanup", p.Files.Delete(documents.StagingScope(kind), previous),
			zap.String("ticketId", ticketID), zap.String("file", previous))
	}
	metrics.TicketTransitions.WithLabelValues(string(kind), string(from), string(models.StatusCompleted)).Inc()

	p.bestEffort("metadata upsert", p.Metadata.Upsert(ctx, models.DocumentMetadata{
		ID:           p.NewID(),
		TicketID:     updated.ID,
		TicketKind:   kind,
		JobID:        updated.JobID,
		FileName:     ref.FileName,
		OriginalName: ref.OriginalName,
		Type:         ref.Type,
		Size:         ref.Size,
		UploadedAt:   ref.UploadedAt,
	}), zap.String("ticketId", ticketID))

	p.publish(ctx, notify.Event{
		Type:       notify.TicketCompleted,
		TicketKind: string(kind),
		TicketID:   updated.ID,
		JobID:      updated.JobID,
		FileName:   ref.FileName,
	})
	return updated, nil
}

// Return stamps the staged document as delivered. The job must exist but is not modified.
// Running it again re-stamps returnedAt.
func (p *Portal) Return(ctx context.Context, kind models.TicketKind, ticketID string) (models.Ticket, error) {
	if ticketID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingRequiredField, "ticketId")
	}
	ticket, err := p.Tickets.Get(ctx, kind, ticketID)
	if err != nil {
		return models.Ticket{}, err
	}
	if ticket.CompletedDocument == nil {
		return models.Ticket{}, types.Errorf(types.ErrNoCompletedDocument, "ticket %s", ticketID)
	}
	if ticket.JobID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingJobReference, "ticket %s", ticketID)
	}
	if _, err := p.Jobs.Get(ctx, ticket.JobID); err != nil {
		return models.Ticket{}, err
	}

	returnedAt := p.returnStamp(ticket.CompletedDocument.UploadedAt)
	if err := p.Metadata.StampReturned(ctx, ticketID, returnedAt); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			p.Logger.Info("no metadata entry to stamp", zap.String("ticketId", ticketID))
		} else {
			p.bestEffort("metadata stamp", err, zap.String("ticketId", ticketID))
		}
	}

	var from models.TicketStatus
	updated, err := p.Tickets.Update(ctx, kind, ticketID, func(t *models.Ticket) error {
		if t.CompletedDocument == nil {
			return types.Errorf(types.ErrNoCompletedDocument, "ticket %s", ticketID)
		}
		if err := models.CheckTransition(kind, t.Status, models.StatusCompleted); err != nil {
			return err
		}
		from = t.Status
		t.Status = models.StatusCompleted
		t.CompletedDocument.ReturnedAt = returnedAt
		t.UpdatedAt = returnedAt
		return nil
	})
	if err != nil {
		return models.Ticket{}, err
	}
	if from != models.StatusCompleted {
		metrics.TicketTransitions.WithLabelValues(string(kind), string(from), string(models.StatusCompleted)).Inc()
	}
	metrics.TicketReturns.WithLabelValues(string(kind)).Inc()

	p.publish(ctx, notify.Event{
		Type:       notify.TicketReturned,
		TicketKind: string(kind),
		TicketID:   updated.ID,
		JobID:      updated.JobID,
		FileName:   updated.CompletedDocument.FileName,
	})
	return updated, nil
}

// returnStamp is now, but never earlier than the upload time.
func (p *Portal) returnStamp(uploadedAt string) string {
	now := p.now()
	if uploaded, err := models.ParseTimestamp(uploadedAt); err == nil && uploaded.After(now) {
		return models.Timestamp(uploaded)
	}
	return models.Timestamp(now)
}

// UpdateStatus applies a status change. A consultant ticket moving to paid also records
// the payment on the job's consultant assignment.
func (p *Portal) UpdateStatus(ctx context.Context, kind models.TicketKind, ticketID string, status models.TicketStatus) (models.Ticket, error) {
	if err := models.ValidateStatus(kind, status); err != nil {
		return models.Ticket{}, err
	}
	ticket, err := p.Tickets.Get(ctx, kind, ticketID)
	if err != nil {
		return models.Ticket{}, err
	}
	if err := models.CheckTransition(kind, ticket.Status, status); err != nil {
		return models.Ticket{}, err
	}

	if kind == models.ConsultantTickets && status == models.StatusPaid {
		return p.markConsultantPaid(ctx, ticket)
	}
	return p.setStatus(ctx, kind, ticketID, status)
}

func (p *Portal) setStatus(ctx context.Context, kind models.TicketKind, ticketID string, status models.TicketStatus) (models.Ticket, error) {
	var from models.TicketStatus
	updated, err := p.Tickets.Update(ctx, kind, ticketID, func(t *models.Ticket) error {
		if err := models.CheckTransition(kind, t.Status, status); err != nil {
			return err
		}
		from = t.Status
		t.Status = status
		t.UpdatedAt = models.Timestamp(p.now())
		return nil
	})
	if err != nil {
		return models.Ticket{}, err
	}
	if from != status {
		metrics.TicketTransitions.WithLabelValues(string(kind), string(from), string(status)).Inc()
	}
	return updated, nil
}

// markConsultantPaid records an intent, upserts the job assignment, sets the ticket
// status and clears the intent. Both writes are idempotent so a crash in between is
// repaired by Recover.
func (p *Portal) markConsultantPaid(ctx context.Context, ticket models.Ticket) (models.Ticket, error) {
	if ticket.JobID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingJobReference, "ticket %s", ticket.ID)
	}
	if ticket.Category == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingRequiredField, "category")
	}
	if ticket.ConsultantID == "" {
		return models.Ticket{}, types.Errorf(types.ErrMissingRequiredField, "consultantId")
	}
	if _, err := p.Jobs.Get(ctx, ticket.JobID); err != nil {
		return models.Ticket{}, err
	}

	intent := models.Intent{
		ID:             p.NewID(),
		Op:             models.IntentConsultantPaid,
		TicketKind:     ticket.Kind,
		TicketID:       ticket.ID,
		JobID:          ticket.JobID,
		Category:       ticket.Category,
		ConsultantID:   ticket.ConsultantID,
		ConsultantName: ticket.ConsultantName,
		Status:         models.StatusPaid,
		CreatedAt:      models.Timestamp(p.now()),
	}
	if err := p.Intents.Record(ctx, intent); err != nil {
		return models.Ticket{}, err
	}

	if err := p.applyConsultantPaid(ctx, intent); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			p.bestEffort("intent clear", p.Intents.Clear(ctx, intent.ID), zap.String("intentId", intent.ID))
		}
		return models.Ticket{}, err
	}
	updated, err := p.setStatus(ctx, ticket.Kind, ticket.ID, models.StatusPaid)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidTransition) {
			p.bestEffort("intent clear", p.Intents.Clear(ctx, intent.ID), zap.String("intentId", intent.ID))
		}
		return models.Ticket{}, err
	}
	p.bestEffort("intent clear", p.Intents.Clear(ctx, intent.ID), zap.String("intentId", intent.ID))

	p.publish(ctx, notify.Event{
		Type:       notify.ConsultantPaid,
		TicketKind: string(ticket.Kind),
		TicketID:   ticket.ID,
		JobID:      ticket.JobID,
		Category:   ticket.Category,
		Consultant: ticket.ConsultantID,
	})
	return updated, nil
}

// applyConsultantPaid merges paid into job.consultants[category] for the consultant,
// appending a new assignment when none exists.
func (p *Portal) applyConsultantPaid(ctx context.Context, intent models.Intent) error {
	ts := models.Timestamp(p.now())
	_, err := p.Jobs.Update(ctx, intent.JobID, func(job *models.Job) error {
		job.UpsertConsultant(intent.Category, models.ConsultantAssignment{
			ConsultantID: intent.ConsultantID,
			Name:         intent.ConsultantName,
		}, func(a *models.ConsultantAssignment) {
			a.Assessment.Status = models.AssessmentPaid
			a.Assessment.UpdatedAt = ts
			if a.Name == "" {
				a.Name = intent.ConsultantName
			}
		})
		job.UpdatedAt = ts
		return nil
	})
	return err
}

// OpenTicketDocument opens a ticket's staged completed document.
func (p *Portal) OpenTicketDocument(ctx context.Context, kind models.TicketKind, ticketID string) (Download, error) {
	ticket, err := p.Tickets.Get(ctx, kind, ticketID)
	if err != nil {
		return Download{}, err
	}
	doc := ticket.CompletedDocument
	if doc == nil {
		return Download{}, types.Errorf(types.ErrNotFound, "ticket %s has no document", ticketID)
	}
	file, info, err := p.Files.Open(documents.StagingScope(kind), doc.FileName)
	if err != nil {
		return Download{}, err
	}
	return Download{File: file, Name: doc.OriginalName, Type: documents.ContentType(doc.Type, doc.OriginalName), Size: info.Size()}, nil
}

// Deliverables lists the returned ticket documents of a job.
func (p *Portal) Deliverables(ctx context.Context, jobID string) ([]models.Deliverable, error) {
	if _, err := p.Jobs.Get(ctx, jobID); err != nil {
		return nil, err
	}
	out := []models.Deliverable{}
	for _, kind := range models.TicketKinds {
		tickets, err := p.Tickets.List(ctx, kind)
		if err != nil {
			return nil, err
		}
		for _, t := range tickets {
			if t.JobID != jobID || t.CompletedDocument == nil || t.CompletedDocument.ReturnedAt == "" {
				continue
			}
			out = append(out, models.Deliverable{
				TicketID:   t.ID,
				TicketKind: kind,
				Label:      t.Label(),
				Document:   *t.CompletedDocument,
				URL:        p.ticketDocumentURL(kind, t.ID),
			})
		}
	}
	return out, nil
}
