// jobs.go
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
	"encoding/json"
	"errors"

	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/metrics"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

// JobInput is the body accepted when creating a job.
type JobInput struct {
	ID           string `json:"id"`
	Address      string `json:"address"`
	Council      string `json:"council"`
	CurrentStage string `json:"currentStage"`
	Status       string `json:"status"`
}

// AssessmentPatch is the mutable part of one assessment sub-object.
type AssessmentPatch struct {
	Status            *models.AssessmentStatus `json:"status,omitempty"`
	UploadedDocuments map[string]bool          `json:"uploadedDocuments,omitempty"`
}

// JobPatch is the typed partial update accepted by PATCH /jobs/{id}.
type JobPatch struct {
	Address                         *string          `json:"address,omitempty"`
	Council                         *string          `json:"council,omitempty"`
	CurrentStage                    *string          `json:"currentStage,omitempty"`
	Status                          *string          `json:"status,omitempty"`
	CustomAssessment                *AssessmentPatch `json:"customAssessment,omitempty"`
	StatementOfEnvironmentalEffects *AssessmentPatch `json:"statementOfEnvironmentalEffects,omitempty"`
	ComplyingDevelopmentCertificate *AssessmentPatch `json:"complyingDevelopmentCertificate,omitempty"`
	WasteManagementAssessment       *AssessmentPatch `json:"wasteManagementAssessment,omitempty"`
	NathersAssessment               *AssessmentPatch `json:"nathersAssessment,omitempty"`
}

func (jp JobPatch) assessments() map[models.AssessmentKind]*AssessmentPatch {
	return map[models.AssessmentKind]*AssessmentPatch{
		models.CustomAssessment:                jp.CustomAssessment,
		models.StatementOfEnvironmentalEffects: jp.StatementOfEnvironmentalEffects,
		models.ComplyingDevelopmentCertificate: jp.ComplyingDevelopmentCertificate,
		models.WasteManagementAssessment:       jp.WasteManagementAssessment,
		models.NathersAssessment:               jp.NathersAssessment,
	}
}

var jobPatchSchema = mustSchema(buildJobPatchSchema())

func mustSchema(def map[string]interface{}) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(def))
	if err != nil {
		panic(err)
	}
	return schema
}

func buildJobPatchSchema() map[string]interface{} {
	assessment := map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"status": map[string]interface{}{
				"type": "string",
				"enum": []interface{}{string(models.AssessmentPending), string(models.AssessmentPaid), string(models.AssessmentCompleted)},
			},
			"uploadedDocuments": map[string]interface{}{
				"type":                 "object",
				"additionalProperties": map[string]interface{}{"type": "boolean"},
			},
		},
	}
	properties := map[string]interface{}{
		"address":      map[string]interface{}{"type": "string", "minLength": 1},
		"council":      map[string]interface{}{"type": "string"},
		"currentStage": map[string]interface{}{"type": "string"},
		"status":       map[string]interface{}{"type": "string"},
	}
	for _, kind := range models.AssessmentKinds {
		properties[string(kind)] = assessment
	}
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"minProperties":        1,
		"properties":           properties,
	}
}

// ParseJobPatch validates a raw PATCH body against the job patch schema and decodes it.
func ParseJobPatch(body []byte) (JobPatch, error) {
	result, err := jobPatchSchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return JobPatch{}, types.Errorf(types.ErrInvalidInput, "job patch is not valid JSON")
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return JobPatch{}, &types.ValidationError{Message: "invalid job patch", Details: details}
	}
	var patch JobPatch
	if err := json.Unmarshal(body, &patch); err != nil {
		return JobPatch{}, types.Errorf(types.ErrInvalidInput, "job patch: %v", err)
	}
	return patch, nil
}

func (p *Portal) CreateJob(ctx context.Context, in JobInput) (models.Job, error) {
	if in.Address == "" {
		return models.Job{}, types.Errorf(types.ErrMissingRequiredField, "address")
	}
	if in.ID == "" {
		in.ID = p.NewID()
	}
	if err := documents.ValidateName(in.ID); err != nil {
		return models.Job{}, err
	}
	job := models.NewJob(in.ID, p.now())
	job.Address = in.Address
	job.Council = in.Council
	job.CurrentStage = in.CurrentStage
	if in.Status != "" {
		job.Status = in.Status
	}
	if err := p.Jobs.Create(ctx, job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (p *Portal) GetJob(ctx context.Context, id string) (models.Job, error) {
	return p.Jobs.Get(ctx, id)
}

func (p *Portal) ListJobs(ctx context.Context) ([]models.Job, error) {
	return p.Jobs.List(ctx)
}

// DeleteJob removes the job record and its document directory.
func (p *Portal) DeleteJob(ctx context.Context, id string) error {
	return p.Jobs.Delete(ctx, id)
}

// PatchJob merges a validated patch into the job under its lock.
func (p *Portal) PatchJob(ctx context.Context, id string, patch JobPatch) (models.Job, error) {
	ts := models.Timestamp(p.now())
	return p.Jobs.Update(ctx, id, func(job *models.Job) error {
		if patch.Address != nil {
			job.Address = *patch.Address
		}
		if patch.Council != nil {
			job.Council = *patch.Council
		}
		if patch.CurrentStage != nil {
			job.CurrentStage = *patch.CurrentStage
		}
		if patch.Status != nil {
			job.Status = *patch.Status
		}
		for kind, ap := range patch.assessments() {
			if ap == nil {
				continue
			}
			slot, _ := job.AssessmentSlot(kind)
			if *slot == nil {
				*slot = &models.Assessment{Status: models.AssessmentPending}
			}
			a := *slot
			if ap.Status != nil {
				a.Status = *ap.Status
			}
			for docID, uploaded := range ap.UploadedDocuments {
				if a.UploadedDocuments == nil {
					a.UploadedDocuments = make(map[string]bool)
				}
				a.UploadedDocuments[docID] = uploaded
			}
			a.UpdatedAt = ts
		}
		job.UpdatedAt = ts
		return nil
	})
}

// JobDocument is the result of a job document upload.
type JobDocument struct {
	ID       string             `json:"id"`
	Document models.DocumentRef `json:"document"`
	Job      models.Job         `json:"job"`
}

// UploadJobDocument stores a file under the job and indexes it in job.documents. When
// assessmentKind is set the document is also marked on that assessment.
func (p *Portal) UploadJobDocument(ctx context.Context, jobID string, file documents.File, assessmentKind string) (JobDocument, error) {
	if _, err := p.Jobs.Get(ctx, jobID); err != nil {
		return JobDocument{}, err
	}
	kind := models.AssessmentKind(assessmentKind)
	if kind != "" {
		if _, ok := (&models.Job{}).AssessmentSlot(kind); !ok {
			return JobDocument{}, types.Errorf(types.ErrInvalidInput, "unknown assessment %q", assessmentKind)
		}
	}
	original, err := documents.CleanOriginalName(file.OriginalName)
	if err != nil {
		return JobDocument{}, err
	}
	file.OriginalName = original

	docID := p.NewID()
	scope := documents.JobScope(jobID)
	storedName := documents.JobDocumentName(docID, p.now(), original)
	ref, err := p.Files.Put(ctx, scope, storedName, file)
	if err != nil {
		return JobDocument{}, err
	}
	metrics.UploadedBytes.WithLabelValues("jobs").Add(float64(ref.Size))

	job, err := p.Jobs.Update(ctx, jobID, func(job *models.Job) error {
		job.Documents[docID] = ref
		if kind != "" {
			slot, _ := job.AssessmentSlot(kind)
			if *slot == nil {
				*slot = &models.Assessment{Status: models.AssessmentPending}
			}
			if (*slot).UploadedDocuments == nil {
				(*slot).UploadedDocuments = make(map[string]bool)
			}
			(*slot).UploadedDocuments[docID] = true
			(*slot).UpdatedAt = ref.UploadedAt
		}
		job.UpdatedAt = ref.UploadedAt
		return nil
	})
	if err != nil {
		p.bestEffort("orphan document cleanup", p.Files.Delete(scope, storedName), zap.String("jobId", jobID))
		return JobDocument{}, err
	}
	return JobDocument{ID: docID, Document: ref, Job: job}, nil
}

// OpenJobDocument opens a stored job document. Names that could leave the job
// directory are rejected before the filesystem is consulted.
func (p *Portal) OpenJobDocument(ctx context.Context, jobID, fileName string) (Download, error) {
	if jobID == "" {
		return Download{}, types.Errorf(types.ErrMissingRequiredField, "jobId")
	}
	if err := documents.ValidateName(fileName); err != nil {
		return Download{}, err
	}
	if err := documents.ValidateName(jobID); err != nil {
		return Download{}, err
	}
	file, info, err := p.Files.Open(documents.JobScope(jobID), fileName)
	if err != nil {
		return Download{}, err
	}

	download := Download{File: file, Name: fileName, Type: documents.ContentType("", fileName), Size: info.Size()}
	job, err := p.Jobs.Get(ctx, jobID)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		p.bestEffort("job lookup for download", err, zap.String("jobId", jobID))
	}
	for _, doc := range job.Documents {
		if doc.FileName == fileName {
			download.Name = doc.OriginalName
			download.Type = documents.ContentType(doc.Type, doc.OriginalName)
			break
		}
	}
	return download, nil
}
