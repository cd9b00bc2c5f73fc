package services_test

import (
	"context"
	"io"
	"testing"

	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/notify"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) catalogEntry(t *testing.T, variant models.CatalogVariant) models.CatalogAssessment {
	t.Helper()
	entry, err := f.portal.CreateCatalogAssessment(context.Background(), variant,
		services.CatalogInput{Section: "Residential", Title: "Dual occupancy SEE", Author: "Planner"},
		pdf("dual-occ.pdf", "template"))
	require.NoError(t, err)
	return entry
}

func TestCreateCatalogAssessment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "json")

	_, err := f.portal.CreateCatalogAssessment(ctx, models.PrePreparedAssessments, services.CatalogInput{}, pdf("a.pdf", "x"))
	assert.ErrorIs(t, err, types.ErrMissingRequiredField)

	entry := f.catalogEntry(t, models.PrePreparedAssessments)
	assert.Equal(t, entry.ID+"-dual-occ.pdf", entry.File.FileName)

	list, err := f.portal.ListCatalog(ctx, models.PrePreparedAssessments)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entry.ID, list[0].ID)

	other, err := f.portal.ListCatalog(ctx, models.KBDevelopmentApplicationAssessments)
	require.NoError(t, err)
	assert.Empty(t, other)

	download, err := f.portal.OpenCatalogFile(ctx, models.PrePreparedAssessments, entry.ID)
	require.NoError(t, err)
	defer download.File.Close()
	body, err := io.ReadAll(download.File)
	require.NoError(t, err)
	assert.Equal(t, "template", string(body))
	assert.Equal(t, "dual-occ.pdf", download.Name)
}

func TestPurchase(t *testing.T) {
	eachBackend(t, func(t *testing.T, f *fixture) {
		ctx := context.Background()
		f.job(t, "j1")
		entry := f.catalogEntry(t, models.PrePreparedInitialAssessments)

		result, err := f.portal.Purchase(ctx, models.PrePreparedInitialAssessments, "j1", entry.ID)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, entry.ID, result.PurchasedAssessment.ID)
		assert.Equal(t, "Dual occupancy SEE", result.PurchasedAssessment.Title)
		assert.Equal(t, "completed", result.PurchasedAssessment.Status)
		wantURL := "/api/catalog/pre-prepared-initial-assessments/" + entry.ID + "/file"
		assert.Equal(t, wantURL, result.PurchasedAssessment.File.URL)

		doc, ok := result.Documents[services.PurchasedDocumentKey(entry.ID)]
		require.True(t, ok)
		assert.Equal(t, entry.File.FileName, doc.FileName)
		assert.Equal(t, wantURL, doc.URL)

		job, err := f.portal.GetJob(ctx, "j1")
		require.NoError(t, err)
		assert.Equal(t, result.PurchasedAssessment, job.PurchasedPrePreparedAssessments[entry.ID])
		assert.Equal(t, doc, job.Documents[services.PurchasedDocumentKey(entry.ID)])

		again, err := f.portal.Purchase(ctx, models.PrePreparedInitialAssessments, "j1", entry.ID)
		require.NoError(t, err)
		assert.Equal(t, result.PurchasedAssessment.PurchaseDate, again.PurchasedAssessment.PurchaseDate)
		assert.Equal(t, []string{notify.AssessmentBought}, f.pub.types())
	})
}

func TestPurchaseErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, "json")
	f.job(t, "j1")
	entry := f.catalogEntry(t, models.PrePreparedAssessments)

	_, err := f.portal.Purchase(ctx, models.PrePreparedAssessments, "j404", entry.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = f.portal.Purchase(ctx, models.PrePreparedAssessments, "j1", "missing")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = f.portal.Purchase(ctx, models.KBDevelopmentApplicationAssessments, "j1", entry.ID)
	assert.ErrorIs(t, err, types.ErrNotFound, "entries belong to one catalog")

	_, err = f.portal.Purchase(ctx, models.PrePreparedAssessments, "", entry.ID)
	assert.ErrorIs(t, err, types.ErrMissingRequiredField)

	_, err = f.portal.Purchase(ctx, models.PrePreparedAssessments, "j1", "")
	assert.ErrorIs(t, err, types.ErrMissingRequiredField)

	job, err := f.portal.GetJob(ctx, "j1")
	require.NoError(t, err)
	assert.Empty(t, job.PurchasedPrePreparedAssessments)
	assert.Empty(t, job.Documents)
}
