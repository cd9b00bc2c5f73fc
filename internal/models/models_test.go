package models_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckTransition(t *testing.T) {
	tests := []struct {
		name    string
		kind    models.TicketKind
		from    models.TicketStatus
		to      models.TicketStatus
		wantErr error
	}{
		{"work pending to in-progress", models.WorkTickets, models.StatusPending, models.StatusInProgress, nil},
		{"work in-progress back to pending", models.WorkTickets, models.StatusInProgress, models.StatusPending, nil},
		{"work pending to completed", models.WorkTickets, models.StatusPending, models.StatusCompleted, nil},
		{"work completed is terminal", models.WorkTickets, models.StatusCompleted, models.StatusPending, types.ErrInvalidTransition},
		{"work has no paid", models.WorkTickets, models.StatusPending, models.StatusPaid, types.ErrInvalidStatus},
		{"work self transition", models.WorkTickets, models.StatusCompleted, models.StatusCompleted, nil},
		{"consultant pending to paid", models.ConsultantTickets, models.StatusPending, models.StatusPaid, nil},
		{"consultant paid to paid", models.ConsultantTickets, models.StatusPaid, models.StatusPaid, nil},
		{"consultant paid to completed", models.ConsultantTickets, models.StatusPaid, models.StatusCompleted, nil},
		{"consultant in-progress to pending", models.ConsultantTickets, models.StatusInProgress, models.StatusPending, types.ErrInvalidTransition},
		{"consultant completed to paid", models.ConsultantTickets, models.StatusCompleted, models.StatusPaid, types.ErrInvalidTransition},
		{"unknown status", models.ConsultantTickets, models.StatusPending, "archived", types.ErrInvalidStatus},
		{"missing current status counts as pending", models.WorkTickets, "", models.StatusInProgress, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := models.CheckTransition(tt.kind, tt.from, tt.to)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseTicketKind(t *testing.T) {
	kind, ok := models.ParseTicketKind("consultant-tickets")
	assert.True(t, ok)
	assert.Equal(t, models.ConsultantTickets, kind)

	_, ok = models.ParseTicketKind("tickets")
	assert.False(t, ok)
}

func TestJobLegacyConsultantsNormalizeOnWrite(t *testing.T) {
	legacy := []byte(`{
		"id": "j2",
		"createdAt": "2024-03-01T10:00:00.000Z",
		"documents": {"d1": {"fileName": "d1.pdf", "originalName": "plan.pdf", "type": "application/pdf", "uploadedAt": "2024-03-01T10:00:00.000Z", "size": "1024"}},
		"consultants": {"Waste Management": {"consultantId": "cons-1", "name": "Acme", "assessment": {"status": "pending"}}}
	}`)

	var job models.Job
	require.NoError(t, json.Unmarshal(legacy, &job))
	require.Len(t, job.Consultants["Waste Management"], 1)
	assert.Equal(t, uint64(1024), job.Documents["d1"].Size.Uint64())

	out, err := json.Marshal(job)
	require.NoError(t, err)

	var written struct {
		Consultants map[string]json.RawMessage `json:"consultants"`
	}
	require.NoError(t, json.Unmarshal(out, &written))
	assert.Equal(t, byte('['), written.Consultants["Waste Management"][0])
}

func TestUpsertConsultant(t *testing.T) {
	job := models.NewJob("j1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	markPaid := func(a *models.ConsultantAssignment) {
		a.Assessment.Status = models.AssessmentPaid
	}

	job.UpsertConsultant("NatHERS", models.ConsultantAssignment{ConsultantID: "cons-1"}, markPaid)
	job.UpsertConsultant("NatHERS", models.ConsultantAssignment{ConsultantID: "cons-2"}, markPaid)
	got := job.UpsertConsultant("NatHERS", models.ConsultantAssignment{ConsultantID: "cons-1"}, markPaid)

	assert.Equal(t, models.AssessmentPaid, got.Assessment.Status)
	require.Len(t, job.Consultants["NatHERS"], 2)
	assert.Equal(t, "cons-1", job.Consultants["NatHERS"][0].ConsultantID)
	assert.Equal(t, "cons-2", job.Consultants["NatHERS"][1].ConsultantID)
}

func TestTimestamp(t *testing.T) {
	ts := models.Timestamp(time.Date(2024, 3, 1, 10, 0, 0, 5_000_000, time.FixedZone("AEST", 10*3600)))
	assert.Equal(t, "2024-03-01T00:00:00.005Z", ts)

	parsed, err := models.ParseTimestamp(ts)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, time.Duration(parsed.Nanosecond()))
}
