// json_tickets.go
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
	"path/filepath"

	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
)

// JSONTicketStore keeps one JSON array file per ticket kind.
type JSONTicketStore struct {
	Dir    string
	Locker Locker
}

func NewJSONTicketStore(dir string, locker Locker) *JSONTicketStore {
	return &JSONTicketStore{Dir: dir, Locker: locker}
}

func (s *JSONTicketStore) collection(kind models.TicketKind) (*collection[models.Ticket], error) {
	if _, ok := models.ParseTicketKind(string(kind)); !ok {
		return nil, types.Errorf(types.ErrInvalidInput, "unknown ticket kind %q", kind)
	}
	return &collection[models.Ticket]{
		path:    filepath.Join(s.Dir, string(kind)+".json"),
		lockKey: ticketsKey(kind),
		locker:  s.Locker,
	}, nil
}

func (s *JSONTicketStore) List(_ context.Context, kind models.TicketKind) ([]models.Ticket, error) {
	c, err := s.collection(kind)
	if err != nil {
		return nil, err
	}
	tickets, err := c.read()
	if err != nil {
		return nil, err
	}
	for i := range tickets {
		tickets[i].Kind = kind
	}
	if tickets == nil {
		tickets = []models.Ticket{}
	}
	return tickets, nil
}

func (s *JSONTicketStore) Get(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error) {
	tickets, err := s.List(ctx, kind)
	if err != nil {
		return models.Ticket{}, err
	}
	for _, t := range tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Ticket{}, types.Errorf(types.ErrNotFound, "ticket %s", id)
}

func (s *JSONTicketStore) Create(ctx context.Context, ticket models.Ticket) error {
	c, err := s.collection(ticket.Kind)
	if err != nil {
		return err
	}
	return c.mutate(ctx, func(tickets []models.Ticket) ([]models.Ticket, error) {
		for _, t := range tickets {
			if t.ID == ticket.ID {
				return nil, types.Errorf(types.ErrInvalidInput, "ticket %s already exists", ticket.ID)
			}
		}
		return append(tickets, ticket), nil
	})
}

func (s *JSONTicketStore) Update(ctx context.Context, kind models.TicketKind, id string, fn func(*models.Ticket) error) (models.Ticket, error) {
	c, err := s.collection(kind)
	if err != nil {
		return models.Ticket{}, err
	}
	var updated models.Ticket
	err = c.mutate(ctx, func(tickets []models.Ticket) ([]models.Ticket, error) {
		for i := range tickets {
			if tickets[i].ID != id {
				continue
			}
			t := tickets[i].Clone()
			t.Kind = kind
			if err := fn(&t); err != nil {
				return nil, err
			}
			tickets[i] = t
			updated = t
			return tickets, nil
		}
		return nil, types.Errorf(types.ErrNotFound, "ticket %s", id)
	})
	return updated, err
}

func (s *JSONTicketStore) Delete(ctx context.Context, kind models.TicketKind, id string) (models.Ticket, error) {
	c, err := s.collection(kind)
	if err != nil {
		return models.Ticket{}, err
	}
	var removed models.Ticket
	err = c.mutate(ctx, func(tickets []models.Ticket) ([]models.Ticket, error) {
		for i := range tickets {
			if tickets[i].ID == id {
				removed = tickets[i]
				removed.Kind = kind
				return append(tickets[:i], tickets[i+1:]...), nil
			}
		}
		return nil, types.Errorf(types.ErrNotFound, "ticket %s", id)
	})
	return removed, err
}
