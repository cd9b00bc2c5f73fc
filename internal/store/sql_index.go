// sql_index.go
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
	"errors"
	"fmt"
	"time"

	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"gorm.io/gorm"
	"gorm.io/hints"
)

// SQLMetadataStore stores one metadata row per ticket.
type SQLMetadataStore struct {
	DB *gorm.DB
}

func NewSQLMetadataStore(db *gorm.DB) *SQLMetadataStore {
	return &SQLMetadataStore{DB: db}
}

func decodeMetadata(rec models.MetadataRecord) (models.DocumentMetadata, error) {
	var meta models.DocumentMetadata
	if err := rec.Payload.Decode(&meta); err != nil {
		return models.DocumentMetadata{}, fmt.Errorf("decode metadata %s: %w", rec.ID, err)
	}
	return meta, nil
}

func (s *SQLMetadataStore) Upsert(ctx context.Context, meta models.DocumentMetadata) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.MetadataRecord
		err := quiet(forUpdate(tx)).Where("ticket_id = ?", meta.TicketID).First(&rec).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if found {
			meta.ID = rec.ID
		} else {
			rec = models.MetadataRecord{ID: meta.ID, TicketID: meta.TicketID, Seq: time.Now().UnixNano()}
		}
		payload, err := models.NewJSON(meta)
		if err != nil {
			return err
		}
		rec.JobID = meta.JobID
		rec.Payload = payload
		if !found {
			return tx.Create(&rec).Error
		}
		return tx.Save(&rec).Error
	})
}

func (s *SQLMetadataStore) FindByTicket(ctx context.Context, ticketID string) (models.DocumentMetadata, error) {
	var rec models.MetadataRecord
	err := quiet(s.DB.WithContext(ctx)).Where("ticket_id = ?", ticketID).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.DocumentMetadata{}, types.Errorf(types.ErrNotFound, "metadata for ticket %s", ticketID)
		}
		return models.DocumentMetadata{}, err
	}
	return decodeMetadata(rec)
}

func (s *SQLMetadataStore) StampReturned(ctx context.Context, ticketID, returnedAt string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.MetadataRecord
		if err := quiet(forUpdate(tx)).Where("ticket_id = ?", ticketID).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.Errorf(types.ErrNotFound, "metadata for ticket %s", ticketID)
			}
			return err
		}
		meta, err := decodeMetadata(rec)
		if err != nil {
			return err
		}
		meta.ReturnedAt = returnedAt
		if rec.Payload, err = models.NewJSON(meta); err != nil {
			return err
		}
		return tx.Save(&rec).Error
	})
}

func (s *SQLMetadataStore) List(ctx context.Context) ([]models.DocumentMetadata, error) {
	var recs []models.MetadataRecord
	if err := quiet(s.DB.WithContext(ctx)).
		Clauses(hints.Comment("select", "metadata.list")).
		Order("seq, id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list metadata: %w", err)
	}
	items := make([]models.DocumentMetadata, 0, len(recs))
	for _, rec := range recs {
		meta, err := decodeMetadata(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, meta)
	}
	return items, nil
}

func (s *SQLMetadataStore) DeleteByTicket(ctx context.Context, ticketID string) error {
	return s.DB.WithContext(ctx).Where("ticket_id = ?", ticketID).Delete(&models.MetadataRecord{}).Error
}

// SQLIntentStore stores pending intents as rows.
type SQLIntentStore struct {
	DB *gorm.DB
}

func NewSQLIntentStore(db *gorm.DB) *SQLIntentStore {
	return &SQLIntentStore{DB: db}
}

func (s *SQLIntentStore) Record(ctx context.Context, intent models.Intent) error {
	payload, err := models.NewJSON(intent)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Create(&models.IntentRecord{ID: intent.ID, Payload: payload}).Error
}

func (s *SQLIntentStore) Clear(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.IntentRecord{}).Error
}

func (s *SQLIntentStore) Pending(ctx context.Context) ([]models.Intent, error) {
	var recs []models.IntentRecord
	if err := quiet(s.DB.WithContext(ctx)).Order("created_at, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list intents: %w", err)
	}
	intents := make([]models.Intent, 0, len(recs))
	for _, rec := range recs {
		var in models.Intent
		if err := rec.Payload.Decode(&in); err != nil {
			return nil, fmt.Errorf("decode intent %s: %w", rec.ID, err)
		}
		intents = append(intents, in)
	}
	return intents, nil
}

// SQLCatalogStore stores catalog assessments of every variant in one table.
type SQLCatalogStore struct {
	DB *gorm.DB
}

func NewSQLCatalogStore(db *gorm.DB) *SQLCatalogStore {
	return &SQLCatalogStore{DB: db}
}

func (s *SQLCatalogStore) List(ctx context.Context, variant models.CatalogVariant) ([]models.CatalogAssessment, error) {
	var recs []models.CatalogRecord
	if err := quiet(s.DB.WithContext(ctx)).
		Clauses(hints.Comment("select", "catalog.list")).
		Where("variant = ?", string(variant)).
		Order("seq, id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list catalog %s: %w", variant, err)
	}
	items := make([]models.CatalogAssessment, 0, len(recs))
	for _, rec := range recs {
		var a models.CatalogAssessment
		if err := rec.Payload.Decode(&a); err != nil {
			return nil, fmt.Errorf("decode assessment %s: %w", rec.ID, err)
		}
		items = append(items, a)
	}
	return items, nil
}

func (s *SQLCatalogStore) Get(ctx context.Context, variant models.CatalogVariant, id string) (models.CatalogAssessment, error) {
	var rec models.CatalogRecord
	err := quiet(s.DB.WithContext(ctx)).Where("variant = ? AND id = ?", string(variant), id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CatalogAssessment{}, types.Errorf(types.ErrNotFound, "assessment %s in %s", id, variant)
		}
		return models.CatalogAssessment{}, err
	}
	var a models.CatalogAssessment
	if err := rec.Payload.Decode(&a); err != nil {
		return models.CatalogAssessment{}, fmt.Errorf("decode assessment %s: %w", rec.ID, err)
	}
	return a, nil
}

func (s *SQLCatalogStore) Create(ctx context.Context, assessment models.CatalogAssessment) error {
	payload, err := models.NewJSON(assessment)
	if err != nil {
		return err
	}
	rec := models.CatalogRecord{
		ID:      assessment.ID,
		Variant: string(assessment.Variant),
		Seq:     time.Now().UnixNano(),
		Payload: payload,
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := quiet(tx).Model(&models.CatalogRecord{}).Where("id = ?", assessment.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.Errorf(types.ErrInvalidInput, "assessment %s already exists", assessment.ID)
		}
		return tx.Create(&rec).Error
	})
}
