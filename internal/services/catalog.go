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

package services

import (
	"context"

	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/metrics"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"go.uber.org/zap"
)

// CatalogInput is the form accepted when authoring a catalog assessment.
type CatalogInput struct {
	Section string `json:"section" form:"section"`
	Title   string `json:"title" form:"title"`
	Content string `json:"content" form:"content"`
	Date    string `json:"date" form:"date"`
	Author  string `json:"author" form:"author"`
}

// CreateCatalogAssessment stores the file and adds the entry to the variant's catalog.
func (p *Portal) CreateCatalogAssessment(ctx context.Context, variant models.CatalogVariant, in CatalogInput, file documents.File) (models.CatalogAssessment, error) {
	if in.Title == "" {
		return models.CatalogAssessment{}, types.Errorf(types.ErrMissingRequiredField, "title")
	}
	original, err := documents.CleanOriginalName(file.OriginalName)
	if err != nil {
		return models.CatalogAssessment{}, err
	}
	file.OriginalName = original

	id := p.NewID()
	scope := documents.CatalogScope(variant)
	storedName := id + "-" + original
	ref, err := p.Files.Put(ctx, scope, storedName, file)
	if err != nil {
		return models.CatalogAssessment{}, err
	}
	metrics.UploadedBytes.WithLabelValues("catalog").Add(float64(ref.Size))

	entry := models.CatalogAssessment{
		ID:        id,
		Variant:   variant,
		Section:   in.Section,
		Title:     in.Title,
		Content:   in.Content,
		Date:      in.Date,
		Author:    in.Author,
		File:      ref,
		CreatedAt: ref.UploadedAt,
	}
	if err := p.Catalog.Create(ctx, entry); err != nil {
		p.bestEffort("orphan catalog file cleanup", p.Files.Delete(scope, storedName), zap.String("assessmentId", id))
		return models.CatalogAssessment{}, err
	}
	return entry, nil
}

func (p *Portal) ListCatalog(ctx context.Context, variant models.CatalogVariant) ([]models.CatalogAssessment, error) {
	return p.Catalog.List(ctx, variant)
}

// OpenCatalogFile opens the file of a catalog assessment.
func (p *Portal) OpenCatalogFile(ctx context.Context, variant models.CatalogVariant, id string) (Download, error) {
	entry, err := p.Catalog.Get(ctx, variant, id)
	if err != nil {
		return Download{}, err
	}
	file, info, err := p.Files.Open(documents.CatalogScope(variant), entry.File.FileName)
	if err != nil {
		return Download{}, err
	}
	return Download{
		File: file,
		Name: entry.File.OriginalName,
		Type: documents.ContentType(entry.File.Type, entry.File.OriginalName),
		Size: info.Size(),
	}, nil
}
