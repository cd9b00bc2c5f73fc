// store.go
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

package store

import (
	"context"

	"github.com/localnerve/planning-portal/internal/models"
)

// JobStore persists job records. Mutators run under the job's lock; a mutator
// error aborts the write and is returned unchanged.
type JobStore interface {
	Create(ctx context.Context, job models.Job) error
	Get(ctx context.Context, id string) (models.Job, error)
	// Save writes a whole record without reading it first. Portal
	// operations use Update, which holds the job lock across the read and write.
	Save(ctx context.Context, job models.Job) error
	Update(ctx context.Context, id string, fn func(*models.Job) error) (models.Job, error)
	// Delete removes the record and the job's document directory. Both are
	// attempted; failures are joined and nothing is rolled back.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Job, error)
}

// TicketStore persists the two ticket collections.
type TicketStore interface {
	List(ctx context.Context, kind models.TicketKind) ([]models.Ticket, error)
	Get(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error)
	Create(ctx context.Context, ticket models.Ticket) error
	Update(ctx context.Context, kind models.TicketKind, id string, fn func(*models.Ticket) error) (models.Ticket, error)
	Delete(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error)
}

// MetadataStore is the secondary index of staged ticket documents.
type MetadataStore interface {
	// Upsert replaces the entry for meta.TicketID, or appends one.
	Upsert(ctx context.Context, meta models.DocumentMetadata) error
	FindByTicket(ctx context.Context, ticketID string) (models.DocumentMetadata, error)
	StampReturned(ctx context.Context, ticketID, returnedAt string) error
	List(ctx context.Context) ([]models.DocumentMetadata, error)
	DeleteByTicket(ctx context.Context, ticketID string) error
}

// IntentStore holds write-ahead intents for dual writes.
type IntentStore interface {
	Record(ctx context.Context, intent models.Intent) error
	Clear(ctx context.Context, id string) error
	Pending(ctx context.Context) ([]models.Intent, error)
}

// CatalogStore holds admin-authored assessments per variant.
type CatalogStore interface {
	List(ctx context.Context, variant models.CatalogVariant) ([]models.CatalogAssessment, error)
	Get(ctx context.Context, variant models.CatalogVariant, id string) (models.CatalogAssessment, error)
	Create(ctx context.Context, assessment models.CatalogAssessment) error
}

// Stores groups one backend's stores.
type Stores struct {
	Jobs     JobStore
	Tickets  TicketStore
	Metadata MetadataStore
	Intents  IntentStore
	Catalog  CatalogStore
}

// Lock keys shared by the JSON backend.
func jobKey(id string) string                         { return "job:" + id }
func ticketsKey(kind models.TicketKind) string        { return "tickets:" + string(kind) }
func catalogKey(variant models.CatalogVariant) string { return "catalog:" + string(variant) }

const (
	metadataKey = "metadata"
	intentsKey  = "intents"
)
