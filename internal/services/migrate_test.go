package services_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeConsultants(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "json")
	writeLegacyJob(t, f, "legacy", `{"NatHERS":{"consultantId":"cons-1"},"Arborist":[{"consultantId":"cons-2"}]}`)
	f.job(t, "fresh")

	n, err := f.portal.NormalizeConsultants(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	data, err := os.ReadFile(filepath.Join(f.dataDir, "jobs", "legacy.json"))
	require.NoError(t, err)
	compact := strings.Join(strings.Fields(string(data)), "")
	assert.Contains(t, compact, `"NatHERS":[{"consultantId":"cons-1"`)
	assert.Contains(t, compact, `"Arborist":[{"consultantId":"cons-2"`)

	job, err := f.portal.GetJob(ctx, "legacy")
	require.NoError(t, err)
	assert.Len(t, job.Consultants["NatHERS"], 1)
}
