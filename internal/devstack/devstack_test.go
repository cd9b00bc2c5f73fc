package devstack_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/localnerve/planning-portal/internal/app"
	"github.com/localnerve/planning-portal/internal/devstack"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// TestMariaDBConsultantPaid runs the paid upsert against MariaDB with redis locks.
// It needs docker and DB_IMAGE.
func TestMariaDBConsultantPaid(t *testing.T) {
	if testing.Short() || os.Getenv("DB_IMAGE") == "" {
		t.Skip("set DB_IMAGE and run without -short to use containers")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	logger := zaptest.NewLogger(t)
	stack, err := devstack.Start(ctx, devstack.OptionsFromEnv(), logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := stack.Terminate(context.Background()); err != nil {
			t.Logf("terminate: %v", err)
		}
	})

	a, err := app.New(ctx, stack.Config(t.TempDir()), logger)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	portal := a.Portal

	_, err = portal.CreateJob(ctx, services.JobInput{ID: "j2", Address: "5 Harbour St"})
	require.NoError(t, err)
	_, err = portal.CreateTicket(ctx, models.ConsultantTickets, services.TicketInput{
		ID: "c1", JobID: "j2", Category: "Waste Management", ConsultantID: "cons-9",
	})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := portal.UpdateStatus(ctx, models.ConsultantTickets, "c1", models.StatusPaid)
		require.NoError(t, err)
	}

	job, err := portal.GetJob(ctx, "j2")
	require.NoError(t, err)
	require.Len(t, job.Consultants["Waste Management"], 1)
	assert.Equal(t, "cons-9", job.Consultants["Waste Management"][0].ConsultantID)

	health := services.HealthCheck(ctx, a.HealthDeps())
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "ok", health.Database)
	assert.Equal(t, "ok", health.Locks)
}

func TestOptionsFromEnv(t *testing.T) {
	t.Setenv("DB_IMAGE", "mariadb:10.11")
	t.Setenv("DB_DATABASE", "")
	opts := devstack.OptionsFromEnv()
	assert.Equal(t, "mariadb:10.11", opts.DBImage)
	assert.Equal(t, "planning_portal", opts.Database)
	assert.Equal(t, "redis:7-alpine", opts.RedisImage)
}
