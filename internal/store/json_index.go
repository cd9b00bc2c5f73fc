// json_index.go
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

// JSONMetadataStore keeps every staged document entry in a single array file.
type JSONMetadataStore struct {
	file collection[models.DocumentMetadata]
}

func NewJSONMetadataStore(path string, locker Locker) *JSONMetadataStore {
	return &JSONMetadataStore{file: collection[models.DocumentMetadata]{path: path, lockKey: metadataKey, locker: locker}}
}

func (s *JSONMetadataStore) Upsert(ctx context.Context, meta models.DocumentMetadata) error {
	return s.file.mutate(ctx, func(items []models.DocumentMetadata) ([]models.DocumentMetadata, error) {
		for i := range items {
			if items[i].TicketID == meta.TicketID {
				meta.ID = items[i].ID
				items[i] = meta
				return items, nil
			}
		}
		return append(items, meta), nil
	})
}

func (s *JSONMetadataStore) FindByTicket(_ context.Context, ticketID string) (models.DocumentMetadata, error) {
	items, err := s.file.read()
	if err != nil {
		return models.DocumentMetadata{}, err
	}
	for _, m := range items {
		if m.TicketID == ticketID {
			return m, nil
		}
	}
	return models.DocumentMetadata{}, types.Errorf(types.ErrNotFound, "metadata for ticket %s", ticketID)
}

func (s *JSONMetadataStore) StampReturned(ctx context.Context, ticketID, returnedAt string) error {
	return s.file.mutate(ctx, func(items []models.DocumentMetadata) ([]models.DocumentMetadata, error) {
		for i := range items {
			if items[i].TicketID == ticketID {
				items[i].ReturnedAt = returnedAt
				return items, nil
			}
		}
		return nil, types.Errorf(types.ErrNotFound, "metadata for ticket %s", ticketID)
	})
}

func (s *JSONMetadataStore) List(_ context.Context) ([]models.DocumentMetadata, error) {
	items, err := s.file.read()
	if items == nil && err == nil {
		items = []models.DocumentMetadata{}
	}
	return items, err
}

func (s *JSONMetadataStore) DeleteByTicket(ctx context.Context, ticketID string) error {
	return s.file.mutate(ctx, func(items []models.DocumentMetadata) ([]models.DocumentMetadata, error) {
		kept := items[:0]
		for _, m := range items {
			if m.TicketID != ticketID {
				kept = append(kept, m)
			}
		}
		return kept, nil
	})
}

// JSONIntentStore keeps pending intents in a single array file.
type JSONIntentStore struct {
	file collection[models.Intent]
}

func NewJSONIntentStore(path string, locker Locker) *JSONIntentStore {
	return &JSONIntentStore{file: collection[models.Intent]{path: path, lockKey: intentsKey, locker: locker}}
}

func (s *JSONIntentStore) Record(ctx context.Context, intent models.Intent) error {
	return s.file.mutate(ctx, func(items []models.Intent) ([]models.Intent, error) {
		return append(items, intent), nil
	})
}

func (s *JSONIntentStore) Clear(ctx context.Context, id string) error {
	return s.file.mutate(ctx, func(items []models.Intent) ([]models.Intent, error) {
		kept := items[:0]
		for _, in := range items {
			if in.ID != id {
				kept = append(kept, in)
			}
		}
		return kept, nil
	})
}

func (s *JSONIntentStore) Pending(_ context.Context) ([]models.Intent, error) {
	items, err := s.file.read()
	if items == nil && err == nil {
		items = []models.Intent{}
	}
	return items, err
}

// JSONCatalogStore keeps one array file per catalog variant.
type JSONCatalogStore struct {
	Dir    string
	Locker Locker
}

func NewJSONCatalogStore(dir string, locker Locker) *JSONCatalogStore {
	return &JSONCatalogStore{Dir: dir, Locker: locker}
}

func (s *JSONCatalogStore) collection(variant models.CatalogVariant) (*collection[models.CatalogAssessment], error) {
	if _, ok := models.ParseCatalogVariant(string(variant)); !ok {
		return nil, types.Errorf(types.ErrNotFound, "catalog %q", variant)
	}
	return &collection[models.CatalogAssessment]{
		path:    filepath.Join(s.Dir, string(variant)+".json"),
		lockKey: catalogKey(variant),
		locker:  s.Locker,
	}, nil
}

func (s *JSONCatalogStore) List(_ context.Context, variant models.CatalogVariant) ([]models.CatalogAssessment, error) {
	c, err := s.collection(variant)
	if err != nil {
		return nil, err
	}
	items, err := c.read()
	if items == nil && err == nil {
		items = []models.CatalogAssessment{}
	}
	return items, err
}

func (s *JSONCatalogStore) Get(ctx context.Context, variant models.CatalogVariant, id string) (models.CatalogAssessment, error) {
	items, err := s.List(ctx, variant)
	if err != nil {
		return models.CatalogAssessment{}, err
	}
	for _, a := range items {
		if a.ID == id {
			return a, nil
		}
	}
	return models.CatalogAssessment{}, types.Errorf(types.ErrNotFound, "assessment %s in %s", id, variant)
}

func (s *JSONCatalogStore) Create(ctx context.Context, assessment models.CatalogAssessment) error {
	c, err := s.collection(assessment.Variant)
	if err != nil {
		return err
	}
	return c.mutate(ctx, func(items []models.CatalogAssessment) ([]models.CatalogAssessment, error) {
		for _, a := range items {
			if a.ID == assessment.ID {
				return nil, types.Errorf(types.ErrInvalidInput, "assessment %s already exists", assessment.ID)
			}
		}
		return append(items, assessment), nil
	})
}
