// purchase.go
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

	"github.com/localnerve/planning-portal/internal/metrics"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/notify"
	"github.com/localnerve/planning-portal/internal/types"
)

// PurchaseResult is the body returned by a purchase.
type PurchaseResult struct {
	Success             bool                          `json:"success"`
	PurchasedAssessment models.PurchasedAssessment    `json:"purchasedAssessment"`
	Documents           map[string]models.DocumentRef `json:"documents"`
}

// PurchasedDocumentKey is the job.documents key of a purchased assessment.
func PurchasedDocumentKey(assessmentID string) string {
	return "purchased-" + assessmentID
}

// Purchase copies a catalog assessment into the job by reference. The purchased record and
// its documents entry land in one job write. Purchasing the same assessment again returns
// the original purchase unchanged.
func (p *Portal) Purchase(ctx context.Context, variant models.CatalogVariant, jobID, assessmentID string) (PurchaseResult, error) {
	if jobID == "" {
		return PurchaseResult{}, types.Errorf(types.ErrMissingRequiredField, "jobId")
	}
	if assessmentID == "" {
		return PurchaseResult{}, types.Errorf(types.ErrMissingRequiredField, "assessment")
	}
	if _, err := p.Jobs.Get(ctx, jobID); err != nil {
		return PurchaseResult{}, err
	}
	entry, err := p.Catalog.Get(ctx, variant, assessmentID)
	if err != nil {
		return PurchaseResult{}, err
	}

	ts := models.Timestamp(p.now())
	var purchased models.PurchasedAssessment
	var fresh bool
	job, err := p.Jobs.Update(ctx, jobID, func(job *models.Job) error {
		if existing, ok := job.PurchasedPrePreparedAssessments[entry.ID]; ok {
			purchased = existing
			return nil
		}
		fresh = true

		file := entry.File
		file.URL = p.catalogFileURL(variant, entry.ID)
		purchased = models.PurchasedAssessment{
			ID:           entry.ID,
			Variant:      variant,
			Section:      entry.Section,
			Title:        entry.Title,
			Content:      entry.Content,
			Date:         entry.Date,
			Author:       entry.Author,
			PurchaseDate: ts,
			File:         file,
			Status:       string(models.AssessmentCompleted),
		}
		job.PurchasedPrePreparedAssessments[entry.ID] = purchased
		job.Documents[PurchasedDocumentKey(entry.ID)] = models.DocumentRef{
			FileName:     file.FileName,
			OriginalName: file.OriginalName,
			Type:         file.Type,
			UploadedAt:   ts,
			Size:         file.Size,
			URL:          file.URL,
		}
		job.UpdatedAt = ts
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	if fresh {
		metrics.Purchases.WithLabelValues(string(variant)).Inc()
		p.publish(ctx, notify.Event{Type: notify.AssessmentBought, JobID: jobID, Assessment: entry.ID})
	}
	return PurchaseResult{Success: true, PurchasedAssessment: purchased, Documents: job.Documents}, nil
}
