package models

import (
	"time"

	"github.com/localnerve/planning-portal/internal/types"
)

// AssessmentKind names one of the assessment sub-objects carried on a job.
type AssessmentKind string

const (
	CustomAssessment                AssessmentKind = "customAssessment"
	StatementOfEnvironmentalEffects AssessmentKind = "statementOfEnvironmentalEffects"
	ComplyingDevelopmentCertificate AssessmentKind = "complyingDevelopmentCertificate"
	WasteManagementAssessment       AssessmentKind = "wasteManagementAssessment"
	NathersAssessment               AssessmentKind = "nathersAssessment"
)

// AssessmentKinds lists every assessment sub-object, in record order.
var AssessmentKinds = []AssessmentKind{
	CustomAssessment,
	StatementOfEnvironmentalEffects,
	ComplyingDevelopmentCertificate,
	WasteManagementAssessment,
	NathersAssessment,
}

type AssessmentStatus string

const (
	AssessmentPending   AssessmentStatus = "pending"
	AssessmentPaid      AssessmentStatus = "paid"
	AssessmentCompleted AssessmentStatus = "completed"
)

// Assessment is an assessment sub-object of a job.
type Assessment struct {
	Status            AssessmentStatus `json:"status,omitempty"`
	UploadedDocuments map[string]bool  `json:"uploadedDocuments,omitempty"`
	CompletedDocument *DocumentRef     `json:"completedDocument,omitempty"`
	UpdatedAt         string           `json:"updatedAt,omitempty"`
}

// ConsultantAssignment is one consultant engaged on a job for a category of work.
type ConsultantAssignment struct {
	ConsultantID string     `json:"consultantId"`
	Name         string     `json:"name,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	Assessment   Assessment `json:"assessment"`
}

// Job is the per-job record.
type Job struct {
	ID                              string                                          `json:"id"`
	Address                         string                                          `json:"address,omitempty"`
	Council                         string                                          `json:"council,omitempty"`
	CurrentStage                    string                                          `json:"currentStage,omitempty"`
	Status                          string                                          `json:"status,omitempty"`
	CreatedAt                       string                                          `json:"createdAt"`
	UpdatedAt                       string                                          `json:"updatedAt,omitempty"`
	Documents                       map[string]DocumentRef                          `json:"documents"`
	CustomAssessment                *Assessment                                     `json:"customAssessment,omitempty"`
	StatementOfEnvironmentalEffects *Assessment                                     `json:"statementOfEnvironmentalEffects,omitempty"`
	ComplyingDevelopmentCertificate *Assessment                                     `json:"complyingDevelopmentCertificate,omitempty"`
	WasteManagementAssessment       *Assessment                                     `json:"wasteManagementAssessment,omitempty"`
	NathersAssessment               *Assessment                                     `json:"nathersAssessment,omitempty"`
	Consultants                     map[string]types.FlexList[ConsultantAssignment] `json:"consultants"`
	PurchasedPrePreparedAssessments map[string]PurchasedAssessment                  `json:"purchasedPrePreparedAssessments"`
}

// NewJob returns a job with empty sub-maps.
func NewJob(id string, now time.Time) Job {
	ts := Timestamp(now)
	job := Job{
		ID:        id,
		Status:    "active",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	job.EnsureMaps()
	return job
}

// EnsureMaps initializes sub-maps missing from older records.
func (j *Job) EnsureMaps() {
	if j.Documents == nil {
		j.Documents = make(map[string]DocumentRef)
	}
	if j.Consultants == nil {
		j.Consultants = make(map[string]types.FlexList[ConsultantAssignment])
	}
	if j.PurchasedPrePreparedAssessments == nil {
		j.PurchasedPrePreparedAssessments = make(map[string]PurchasedAssessment)
	}
}

// AssessmentSlot returns the field holding the assessment of the given kind.
func (j *Job) AssessmentSlot(kind AssessmentKind) (**Assessment, bool) {
	switch kind {
	case CustomAssessment:
		return &j.CustomAssessment, true
	case StatementOfEnvironmentalEffects:
		return &j.StatementOfEnvironmentalEffects, true
	case ComplyingDevelopmentCertificate:
		return &j.ComplyingDevelopmentCertificate, true
	case WasteManagementAssessment:
		return &j.WasteManagementAssessment, true
	case NathersAssessment:
		return &j.NathersAssessment, true
	}
	return nil, false
}

// UpsertConsultant merges an assignment into the category list keyed by consultant id,
// appending when the consultant is not yet present. Returns the stored assignment.
func (j *Job) UpsertConsultant(category string, assignment ConsultantAssignment, merge func(*ConsultantAssignment)) ConsultantAssignment {
	j.EnsureMaps()
	list := j.Consultants[category].Slice()
	for i := range list {
		if list[i].ConsultantID == assignment.ConsultantID {
			merge(&list[i])
			j.Consultants[category] = types.FlexList[ConsultantAssignment](list)
			return list[i]
		}
	}
	merge(&assignment)
	list = append(list, assignment)
	j.Consultants[category] = types.FlexList[ConsultantAssignment](list)
	return assignment
}
