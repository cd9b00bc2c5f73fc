// sql_jobs.go
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

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// quiet silences gorm's per-statement logging for hot paths.
func quiet(db *gorm.DB) *gorm.DB {
	return db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
}

// forUpdate locks the selected row until the surrounding transaction ends.
// Drivers without row locks (sqlite) ignore the clause.
func forUpdate(tx *gorm.DB) *gorm.DB {
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// SQLJobStore stores each job as a JSON payload row.
type SQLJobStore struct {
	DB    *gorm.DB
	Files *documents.Store
}

func NewSQLJobStore(db *gorm.DB, files *documents.Store) *SQLJobStore {
	return &SQLJobStore{DB: db, Files: files}
}

func decodeJob(rec models.JobRecord) (models.Job, error) {
	var job models.Job
	if err := rec.Payload.Decode(&job); err != nil {
		return models.Job{}, fmt.Errorf("decode job %s: %w", rec.ID, err)
	}
	job.ID = rec.ID
	job.EnsureMaps()
	return job, nil
}

func jobRecord(job models.Job) (models.JobRecord, error) {
	job.EnsureMaps()
	payload, err := models.NewJSON(job)
	if err != nil {
		return models.JobRecord{}, fmt.Errorf("encode job %s: %w", job.ID, err)
	}
	return models.JobRecord{ID: job.ID, Payload: payload}, nil
}

func (s *SQLJobStore) Create(ctx context.Context, job models.Job) error {
	rec, err := jobRecord(job)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := quiet(tx).Model(&models.JobRecord{}).Where("id = ?", job.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return types.Errorf(types.ErrInvalidInput, "job %s already exists", job.ID)
		}
		return tx.Create(&rec).Error
	})
}

func (s *SQLJobStore) Get(ctx context.Context, id string) (models.Job, error) {
	var rec models.JobRecord
	err := quiet(s.DB.WithContext(ctx)).
		Clauses(hints.Comment("select", "jobs.get")).
		Where("id = ?", id).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Job{}, types.Errorf(types.ErrNotFound, "job %s", id)
		}
		return models.Job{}, fmt.Errorf("load job %s: %w", id, err)
	}
	return decodeJob(rec)
}

// Save writes the whole job record, creating it when absent.
// Read-modify-write callers use Update instead.
func (s *SQLJobStore) Save(ctx context.Context, job models.Job) error {
	rec, err := jobRecord(job)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.JobRecord
		err := quiet(forUpdate(tx)).Where("id = ?", job.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&rec).Error
		}
		if err != nil {
			return err
		}
		existing.Payload = rec.Payload
		return tx.Save(&existing).Error
	})
}

func (s *SQLJobStore) Update(ctx context.Context, id string, fn func(*models.Job) error) (models.Job, error) {
	var job models.Job
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec models.JobRecord
		if err := quiet(forUpdate(tx)).
			Clauses(hints.Comment("select", "jobs.update")).
			Where("id = ?", id).
			First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return types.Errorf(types.ErrNotFound, "job %s", id)
			}
			return err
		}

		var err error
		if job, err = decodeJob(rec); err != nil {
			return err
		}
		if err := fn(&job); err != nil {
			return err
		}
		updated, err := jobRecord(job)
		if err != nil {
			return err
		}
		rec.Payload = updated.Payload
		return tx.Save(&rec).Error
	})
	if err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *SQLJobStore) Delete(ctx context.Context, id string) error {
	result := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.JobRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete job %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return types.Errorf(types.ErrNotFound, "job %s", id)
	}
	if s.Files != nil {
		if err := s.Files.DeleteScope(documents.JobScope(id)); err != nil {
			return errors.Join(fmt.Errorf("job %s record deleted", id), err)
		}
	}
	return nil
}

func (s *SQLJobStore) List(ctx context.Context) ([]models.Job, error) {
	var recs []models.JobRecord
	if err := quiet(s.DB.WithContext(ctx)).
		Clauses(hints.Comment("select", "jobs.list")).
		Order("created_at, id").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	jobs := make([]models.Job, 0, len(recs))
	for _, rec := range recs {
		job, err := decodeJob(rec)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
