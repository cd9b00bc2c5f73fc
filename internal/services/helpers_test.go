package services_test

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/planning-portal/internal/database"
	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/notify"
	"github.com/localnerve/planning-portal/internal/services"
	"github.com/localnerve/planning-portal/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingPublisher) Publish(_ context.Context, e notify.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

type fixture struct {
	portal  *services.Portal
	dataDir string
	pub     *recordingPublisher
}

func newFixture(t *testing.T, backend string) *fixture {
	t.Helper()
	dir := t.TempDir()
	files := documents.New(filepath.Join(dir, "files"), 1<<20, nil)

	var stores store.Stores
	switch backend {
	case "sql":
		db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		require.NoError(t, err)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		sqlDB.SetMaxOpenConns(1)
		t.Cleanup(func() { sqlDB.Close() })
		require.NoError(t, database.AutoMigrate(db))
		stores = store.NewSQLStores(db, files)
	default:
		stores = store.NewJSONStores(dir, store.NewLocalLocker(), files)
	}

	pub := &recordingPublisher{}
	portal := services.New(stores, files, pub, zaptest.NewLogger(t))

	var mu sync.Mutex
	now := epoch
	portal.Now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
	files.Now = portal.Now
	seq := 0
	portal.NewID = func() string {
		mu.Lock()
		defer mu.Unlock()
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return &fixture{portal: portal, dataDir: dir, pub: pub}
}

func eachBackend(t *testing.T, fn func(t *testing.T, f *fixture)) {
	for _, backend := range []string{"json", "sql"} {
		t.Run(backend, func(t *testing.T) { fn(t, newFixture(t, backend)) })
	}
}

func pdf(name, body string) documents.File {
	return documents.File{OriginalName: name, Type: "application/pdf", Size: int64(len(body)), Reader: strings.NewReader(body)}
}

func (f *fixture) job(t *testing.T, id string) models.Job {
	t.Helper()
	job, err := f.portal.CreateJob(context.Background(), services.JobInput{ID: id, Address: "12 Example Rd", Council: "Northside"})
	require.NoError(t, err)
	return job
}

func (f *fixture) ticket(t *testing.T, kind models.TicketKind, in services.TicketInput) models.Ticket {
	t.Helper()
	ticket, err := f.portal.CreateTicket(context.Background(), kind, in)
	require.NoError(t, err)
	return ticket
}
