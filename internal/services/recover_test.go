package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paidIntent(id, ticketID, jobID string) models.Intent {
	return models.Intent{
		ID:           id,
		Op:           models.IntentConsultantPaid,
		TicketKind:   models.ConsultantTickets,
		TicketID:     ticketID,
		JobID:        jobID,
		Category:     "Waste Management",
		ConsultantID: "cons-9",
		Status:       models.StatusPaid,
		CreatedAt:    "2024-03-01T08:00:00.000Z",
	}
}

func TestRecoverReplaysInterruptedPaid(t *testing.T) {
	eachBackend(t, func(t *testing.T, f *fixture) {
		ctx := context.Background()
		f.job(t, "j2")
		f.ticket(t, models.ConsultantTickets, services.TicketInput{ID: "c1", JobID: "j2", Category: "Waste Management", ConsultantID: "cons-9"})

		// job written, process died before the ticket status landed
		require.NoError(t, f.portal.Intents.Record(ctx, paidIntent("i1", "c1", "j2")))
		_, err := f.portal.Jobs.Update(ctx, "j2", func(job *models.Job) error {
			job.UpsertConsultant("Waste Management", models.ConsultantAssignment{ConsultantID: "cons-9"}, func(a *models.ConsultantAssignment) {
				a.Assessment.Status = models.AssessmentPaid
			})
			return nil
		})
		require.NoError(t, err)

		require.NoError(t, f.portal.Intents.Record(ctx, paidIntent("i2", "c404", "j404")))
		require.NoError(t, f.portal.Intents.Record(ctx, models.Intent{ID: "i3", Op: "unknown.op"}))

		report, err := f.portal.Recover(ctx)
		require.NoError(t, err)
		assert.Equal(t, services.RecoverReport{Replayed: 1, Discarded: 2}, report)

		ticket, err := f.portal.GetTicket(ctx, models.ConsultantTickets, "c1")
		require.NoError(t, err)
		assert.Equal(t, models.StatusPaid, ticket.Status)

		job, err := f.portal.GetJob(ctx, "j2")
		require.NoError(t, err)
		require.Len(t, job.Consultants["Waste Management"], 1)
		assert.Equal(t, models.AssessmentPaid, job.Consultants["Waste Management"][0].Assessment.Status)

		pending, err := f.portal.Intents.Pending(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)

		report, err = f.portal.Recover(ctx)
		require.NoError(t, err)
		assert.Equal(t, services.RecoverReport{}, report)
	})
}

func TestRecoverDiscardsWhenTicketGone(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "json")
	f.job(t, "j2")
	require.NoError(t, f.portal.Intents.Record(ctx, paidIntent("i1", "c-gone", "j2")))

	report, err := f.portal.Recover(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Discarded)

	pending, err := f.portal.Intents.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
