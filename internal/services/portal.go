// portal.go
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
	"time"

	"github.com/google/uuid"
	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/localnerve/planning-portal/internal/metrics"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/notify"
	"github.com/localnerve/planning-portal/internal/store"
	"go.uber.org/zap"
)

// Portal runs the ticket lifecycle, job, catalog and purchase operations over one set of stores.
type Portal struct {
	Jobs      store.JobStore
	Tickets   store.TicketStore
	Metadata  store.MetadataStore
	Intents   store.IntentStore
	Catalog   store.CatalogStore
	Files     *documents.Store
	Publisher notify.Publisher
	Logger    *zap.Logger

	// BasePath prefixes the download URLs written into records.
	BasePath string

	Now   func() time.Time
	NewID func() string
}

// New wires a Portal with the wall clock and random ids.
func New(stores store.Stores, files *documents.Store, publisher notify.Publisher, logger *zap.Logger) *Portal {
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &Portal{
		Jobs:      stores.Jobs,
		Tickets:   stores.Tickets,
		Metadata:  stores.Metadata,
		Intents:   stores.Intents,
		Catalog:   stores.Catalog,
		Files:     files,
		Publisher: publisher,
		Logger:    logging.OrNop(logger),
		BasePath:  "/api",
		Now:       time.Now,
		NewID:     uuid.NewString,
	}
}

// Download is an open stored file ready to stream.
type Download struct {
	File *os.File
	Name string
	Type string
	Size int64
}

func (p *Portal) now() time.Time {
	return p.Now().UTC()
}

// bestEffort logs a failed secondary step without failing the request.
func (p *Portal) bestEffort(step string, err error, fields ...zap.Field) {
	if err == nil {
		return
	}
	metrics.BestEffortFailures.WithLabelValues(step).Inc()
	p.Logger.Warn(step+" failed", append(fields, zap.Error(err))...)
}

func (p *Portal) publish(ctx context.Context, event notify.Event) {
	event.OccurredAt = models.Timestamp(p.now())
	p.bestEffort("notify", p.Publisher.Publish(ctx, event), zap.String("event", event.Type))
}

func (p *Portal) ticketDocumentURL(kind models.TicketKind, id string) string {
	return fmt.Sprintf("%s/%s/%s/document", p.BasePath, kind, id)
}

func (p *Portal) catalogFileURL(variant models.CatalogVariant, id string) string {
	return fmt.Sprintf("%s/catalog/%s/%s/file", p.BasePath, variant, id)
}
