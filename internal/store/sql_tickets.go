// sql_tickets.go
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

// SQLTicketStore stores tickets of both kinds in one table.
type SQLTicketStore struct {
	DB *gorm.DB
}

func NewSQLTicketStore(db *gorm.DB) *SQLTicketStore {
	return &SQLTicketStore{DB: db}
}

func decodeTicket(rec models.TicketRecord) (models.Ticket, error) {
	var t models.Ticket
	if err := rec.Payload.Decode(&t); err != nil {
		return models.Ticket{}, fmt.Errorf("decode ticket %s: %w", rec.ID, err)
	}
	t.ID = rec.ID
	t.Kind = models.TicketKind(rec.Kind)
	return t, nil
}

func fillTicketRecord(rec *models.TicketRecord, t models.Ticket) error {
	payload, err := models.NewJSON(t)
	if err != nil {
		return fmt.Errorf("encode ticket %s: %w", t.ID, err)
	}
	rec.ID = t.ID
	rec.Kind = string(t.Kind)
	rec.JobID = t.JobID
	rec.Status = string(t.Status)
	rec.Payload = payload
	return nil
}

func (s *SQLTicketStore) List(ctx context.Context, kind models.TicketKind) ([]models.Ticket, error) {
	var recs []models.TicketRecord
	if err := quiet(s.DB.WithContext(ctx)).
		Clauses(hints.Comment("select", "tickets.list")).
		Where("kind = ?", string(kind)).
		Order("seq, id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	tickets := make([]models.Ticket, 0, len(recs))
	for _, rec := range recs {
		t, err := decodeTicket(rec)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (s *SQLTicketStore) Get(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error) {
	var rec models.TicketRecord
	err := quiet(s.DB.WithContext(ctx)).
		Clauses(hints.Comment("select", "tickets.get")).
		Where("kind = ? AND id = ?", string(kind), id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Ticket{}, types.Errorf(types.ErrNotFound, "ticket %s", id)
		}
		return models.Ticket{}, fmt.Errorf("load ticket %s: %w", id, err)
	}
	return decodeTicket(rec)
}

func (s *SQLTicketStore) Create(ctx context.Context, ticket models.Ticket) error {
	if _, ok := models.ParseTicketKind(string(ticket.Kind)); !ok {
		return types.Errorf(types.ErrInvalidInput, "unknown ticket kind %q", ticket.Kind)
	}
	rec := models.TicketRecord{Seq: time.Now().UnixNano()}
	if err := fillTicketRecord(&rec, ticket); err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := quiet(tx).Model(&models.TicketRecord{}).Where("id = ?", ticket.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.Errorf(types.ErrInvalidInput, "ticket %s already exists", ticket.ID)
		}
		return tx.Create(&rec).Error
	})
}

func (s *SQLTicketStore) Update(ctx context.Context, kind models.TicketKind, id string, fn func(*models.Ticket) error) (models.Ticket, error) {
	var ticket models.Ticket
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.TicketRecord
		if err := quiet(forUpdate(tx)).
			Clauses(hints.Comment("select", "tickets.update")).
			Where("kind = ? AND id = ?", string(kind), id).
			First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.Errorf(types.ErrNotFound, "ticket %s", id)
			}
			return err
		}

		var err error
		if ticket, err = decodeTicket(rec); err != nil {
			return err
		}
		if err := fn(&ticket); err != nil {
			return err
		}
		ticket.ID, ticket.Kind = rec.ID, kind
		if err := fillTicketRecord(&rec, ticket); err != nil {
			return err
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}

func (s *SQLTicketStore) Delete(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error) {
	var ticket models.Ticket
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.TicketRecord
		if err := quiet(forUpdate(tx)).Where("kind = ? AND id = ?", string(kind), id).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.Errorf(types.ErrNotFound, "ticket %s", id)
			}
			return err
		}
		var err error
		if ticket, err = decodeTicket(rec); err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
	if err != nil {
		return models.Ticket{}, err
	}
	return ticket, nil
}
