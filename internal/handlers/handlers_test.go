// handlers_test.go
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

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/handlers"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/store"
	"github.com/localnerve/planning-portal/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const maxUpload = 64

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()
	files := documents.New(filepath.Join(dir, "files"), maxUpload, nil)
	stores := store.NewJSONStores(dir, store.NewLocalLocker(), files)
	portal := services.New(stores, files, nil, zaptest.NewLogger(t))

	app := fiber.New()
	api := app.Group("/api")
	handlers.Register(api, portal, services.HealthDeps{DataDir: dir}, zaptest.NewLogger(t))
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func doMultipart(t *testing.T, app *fiber.App, path string, fields map[string]string, fileName string, content []byte) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		part, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedJob(t *testing.T, app *fiber.App, id string) models.Job {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/jobs", services.JobInput{ID: id, Address: "12 Example Rd"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decode[models.Job](t, resp)
}

func seedTicket(t *testing.T, app *fiber.App, kind models.TicketKind, in services.TicketInput) {
	t.Helper()
	resp := doJSON(t, app, "POST", "/api/"+string(kind), in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestWorkTicketUploadReturnDownload(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")
	seedTicket(t, app, models.WorkTickets, services.TicketInput{ID: "t1", JobID: "j1", TicketType: "Custom Assessment"})

	jobBefore := decode[models.Job](t, doJSON(t, app, "GET", "/api/jobs/j1", nil))

	resp := doMultipart(t, app, "/api/work-tickets/upload", map[string]string{"ticketId": "t1"}, "fileA.pdf", []byte("%PDF-1.4 a"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	uploaded := decode[models.Ticket](t, resp)
	assert.Equal(t, models.StatusCompleted, uploaded.Status)
	require.NotNil(t, uploaded.CompletedDocument)
	assert.Equal(t, "fileA.pdf", uploaded.CompletedDocument.OriginalName)
	assert.Empty(t, uploaded.CompletedDocument.ReturnedAt)

	resp = doJSON(t, app, "POST", "/api/work-tickets/return", handlers.ReturnRequest{TicketID: "t1"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	returned := decode[models.Ticket](t, resp)
	assert.NotEmpty(t, returned.CompletedDocument.ReturnedAt)
	assert.GreaterOrEqual(t, returned.CompletedDocument.ReturnedAt, returned.CompletedDocument.UploadedAt)

	jobAfter := decode[models.Job](t, doJSON(t, app, "GET", "/api/jobs/j1", nil))
	assert.Equal(t, jobBefore, jobAfter)

	resp = doJSON(t, app, "GET", "/api/work-tickets/t1/document", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="fileA.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 a", string(body))

	deliverables := decode[[]models.Deliverable](t, doJSON(t, app, "GET", "/api/jobs/j1/deliverables", nil))
	require.Len(t, deliverables, 1)
	assert.Equal(t, "t1", deliverables[0].TicketID)
}

func TestReturnErrors(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")
	seedTicket(t, app, models.WorkTickets, services.TicketInput{ID: "t1", JobID: "j1"})

	resp := doJSON(t, app, "POST", "/api/work-tickets/return", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[utils.ErrorResponseStruct](t, resp)
	assert.Equal(t, "missing_required_field", body.Type)
	assert.NotEmpty(t, body.Error)

	resp = doJSON(t, app, "POST", "/api/work-tickets/return", handlers.ReturnRequest{TicketID: "t404"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body = decode[utils.ErrorResponseStruct](t, resp)
	assert.Equal(t, "not_found", body.Type)
	assert.False(t, body.Ok)

	resp = doJSON(t, app, "POST", "/api/work-tickets/return", handlers.ReturnRequest{TicketID: "t1"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no_completed_document", decode[utils.ErrorResponseStruct](t, resp).Type)

	ticket := decode[models.Ticket](t, doJSON(t, app, "GET", "/api/work-tickets/t1", nil))
	assert.Equal(t, models.StatusPending, ticket.Status)
	assert.Nil(t, ticket.CompletedDocument)
}

func TestUploadErrors(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")
	seedTicket(t, app, models.WorkTickets, services.TicketInput{ID: "t1", JobID: "j1"})

	resp := doMultipart(t, app, "/api/work-tickets/upload", nil, "a.pdf", []byte("x"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doMultipart(t, app, "/api/work-tickets/upload", map[string]string{"ticketId": "t1"}, "", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doMultipart(t, app, "/api/work-tickets/upload", map[string]string{"ticketId": "t404"}, "a.pdf", []byte("x"))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doMultipart(t, app, "/api/work-tickets/upload", map[string]string{"ticketId": "t1"}, "big.pdf", bytes.Repeat([]byte("x"), maxUpload+1))
	assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, "payload_too_large", decode[utils.ErrorResponseStruct](t, resp).Type)
}

func TestConsultantPaidTwice(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j2")
	seedTicket(t, app, models.ConsultantTickets, services.TicketInput{
		ID: "c1", JobID: "j2", Category: "Waste Management", ConsultantID: "cons-9",
	})

	for i := 0; i < 2; i++ {
		resp := doJSON(t, app, "PATCH", "/api/consultant-tickets/c1", handlers.StatusUpdate{Status: models.StatusPaid})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, models.StatusPaid, decode[models.Ticket](t, resp).Status)
	}

	job := decode[models.Job](t, doJSON(t, app, "GET", "/api/jobs/j2", nil))
	entries := job.Consultants["Waste Management"]
	require.Len(t, entries, 1)
	assert.Equal(t, "cons-9", entries[0].ConsultantID)
	assert.Equal(t, models.AssessmentPaid, entries[0].Assessment.Status)
}

func TestUpdateTicketStatusErrors(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")
	seedTicket(t, app, models.WorkTickets, services.TicketInput{ID: "t1", JobID: "j1", Status: models.StatusCompleted})

	resp := doJSON(t, app, "PATCH", "/api/work-tickets/t1", handlers.StatusUpdate{Status: models.StatusPaid})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_status", decode[utils.ErrorResponseStruct](t, resp).Type)

	resp = doJSON(t, app, "PATCH", "/api/work-tickets/t1", handlers.StatusUpdate{Status: models.StatusPending})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "invalid_transition", decode[utils.ErrorResponseStruct](t, resp).Type)

	resp = doJSON(t, app, "PATCH", "/api/work-tickets/t1", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "PATCH", "/api/work-tickets/t404", handlers.StatusUpdate{Status: models.StatusInProgress})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestTicketCrud(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")
	seedTicket(t, app, models.WorkTickets, services.TicketInput{ID: "t1", JobID: "j1"})

	list := decode[[]models.Ticket](t, doJSON(t, app, "GET", "/api/work-tickets", nil))
	require.Len(t, list, 1)
	assert.Equal(t, "12 Example Rd", list[0].JobAddress)

	others := decode[[]models.Ticket](t, doJSON(t, app, "GET", "/api/consultant-tickets", nil))
	assert.Empty(t, others)

	resp := doJSON(t, app, "POST", "/api/consultant-tickets", services.TicketInput{JobID: "j1"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/work-tickets/t1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[utils.MessageResponseStruct](t, resp).Ok)

	resp = doJSON(t, app, "GET", "/api/work-tickets/t1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestJobRoutes(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")

	resp := doJSON(t, app, "POST", "/api/jobs", map[string]string{"id": "j2"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest("PATCH", "/api/jobs/j1", bytes.NewBufferString(`{"owner":"me"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	verr := decode[utils.ErrorResponseStruct](t, resp)
	assert.Equal(t, "validation", verr.Type)
	assert.NotEmpty(t, verr.Details)

	req = httptest.NewRequest("PATCH", "/api/jobs/j1", bytes.NewBufferString(`{"currentStage":"lodged","customAssessment":{"status":"paid"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	job := decode[models.Job](t, resp)
	assert.Equal(t, "lodged", job.CurrentStage)
	require.NotNil(t, job.CustomAssessment)
	assert.Equal(t, models.AssessmentPaid, job.CustomAssessment.Status)

	resp = doMultipart(t, app, "/api/jobs/j1/documents", map[string]string{"assessmentKind": "customAssessment"}, "plan.pdf", []byte("plan"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	uploaded := decode[services.JobDocument](t, resp)
	assert.True(t, uploaded.Job.CustomAssessment.UploadedDocuments[uploaded.ID])

	resp = doJSON(t, app, "GET", "/api/jobs/j1/documents/"+uploaded.Document.FileName, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="plan.pdf"`, resp.Header.Get("Content-Disposition"))

	resp = doJSON(t, app, "GET", "/api/download?jobId=j1&fileName="+uploaded.Document.FileName, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	jobs := decode[[]models.Job](t, doJSON(t, app, "GET", "/api/jobs", nil))
	assert.Len(t, jobs, 1)

	resp = doJSON(t, app, "DELETE", "/api/jobs/j1", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/api/jobs/j1", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/api/download?jobId=j1&fileName="+uploaded.Document.FileName, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDownloadRejectsTraversal(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")

	for _, path := range []string{
		"/api/download?jobId=j1&fileName=../j1.json",
		"/api/download?jobId=j1&fileName=..%2F..%2Fetc%2Fpasswd",
		"/api/download?jobId=..&fileName=j1.json",
		"/api/jobs/j1/documents/..secret",
		"/api/jobs/j1/documents/%2E%2E%2Fj1.json",
		"/api/jobs/j1/documents/a%2Fb.pdf",
		"/api/jobs/%2E%2E/documents/j1.json",
	} {
		resp := doJSON(t, app, "GET", path, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "path_traversal", decode[utils.ErrorResponseStruct](t, resp).Type, path)
	}

	resp := doJSON(t, app, "GET", "/api/download?jobId=j1", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/download?jobId=j1&fileName=absent.pdf", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCatalogAndPurchase(t *testing.T) {
	app := setupApp(t)
	seedJob(t, app, "j1")

	resp := doMultipart(t, app, "/api/catalog/pre-prepared-assessments",
		map[string]string{"title": "Granny flat SEE", "section": "Residential"}, "granny.pdf", []byte("template"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	entry := decode[models.CatalogAssessment](t, resp)
	assert.Equal(t, "Granny flat SEE", entry.Title)
	assert.Equal(t, "Residential", entry.Section)

	list := decode[[]models.CatalogAssessment](t, doJSON(t, app, "GET", "/api/catalog/pre-prepared-assessments", nil))
	require.Len(t, list, 1)

	resp = doJSON(t, app, "GET", "/api/catalog/unknown-catalog", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/jobs/j1/pre-prepared-assessments/purchase", handlers.PurchaseRequest{Assessment: entry.ID})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode[services.PurchaseResult](t, resp)
	assert.True(t, result.Success)
	doc := result.Documents[services.PurchasedDocumentKey(entry.ID)]
	assert.Equal(t, "/api/catalog/pre-prepared-assessments/"+entry.ID+"/file", doc.URL)

	resp = doJSON(t, app, "GET", doc.URL, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "template", string(body))

	resp = doJSON(t, app, "POST", "/api/jobs/j404/pre-prepared-assessments/purchase", handlers.PurchaseRequest{Assessment: entry.ID})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/api/jobs/j1/pre-prepared-assessments/purchase", handlers.PurchaseRequest{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	app := setupApp(t)
	resp := doJSON(t, app, "GET", "/api/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode[services.HealthCheckResult](t, resp)
	assert.Equal(t, "healthy", result.Status)
}
