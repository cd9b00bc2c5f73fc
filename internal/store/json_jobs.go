// json_jobs.go
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
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/localnerve/planning-portal/internal/documents"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
)

// JSONJobStore keeps one JSON file per job under Dir.
type JSONJobStore struct {
	Dir    string
	Locker Locker
	Files  *documents.Store
}

func NewJSONJobStore(dir string, locker Locker, files *documents.Store) *JSONJobStore {
	return &JSONJobStore{Dir: dir, Locker: locker, Files: files}
}

func (s *JSONJobStore) path(id string) (string, error) {
	if err := documents.ValidateName(id); err != nil {
		return "", err
	}
	return filepath.Join(s.Dir, id+".json"), nil
}

func (s *JSONJobStore) load(id string) (models.Job, error) {
	path, err := s.path(id)
	if err != nil {
		return models.Job{}, err
	}
	var job models.Job
	found, err := readJSON(path, &job)
	if err != nil {
		return models.Job{}, err
	}
	if !found {
		return models.Job{}, types.Errorf(types.ErrNotFound, "job %s", id)
	}
	job.EnsureMaps()
	return job, nil
}

func (s *JSONJobStore) Create(ctx context.Context, job models.Job) error {
	path, err := s.path(job.ID)
	if err != nil {
		return err
	}
	unlock, err := s.Locker.Lock(ctx, jobKey(job.ID))
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := os.Stat(path); err == nil {
		return types.Errorf(types.ErrInvalidInput, "job %s already exists", job.ID)
	}
	job.EnsureMaps()
	return writeJSON(path, job)
}

func (s *JSONJobStore) Get(_ context.Context, id string) (models.Job, error) {
	return s.load(id)
}

// Save writes the whole job record, creating it when absent.
// Read-modify-write callers use Update instead.
func (s *JSONJobStore) Save(ctx context.Context, job models.Job) error {
	path, err := s.path(job.ID)
	if err != nil {
		return err
	}
	unlock, err := s.Locker.Lock(ctx, jobKey(job.ID))
	if err != nil {
		return err
	}
	defer unlock()

	job.EnsureMaps()
	return writeJSON(path, job)
}

func (s *JSONJobStore) Update(ctx context.Context, id string, fn func(*models.Job) error) (models.Job, error) {
	path, err := s.path(id)
	if err != nil {
		return models.Job{}, err
	}
	unlock, err := s.Locker.Lock(ctx, jobKey(id))
	if err != nil {
		return models.Job{}, err
	}
	defer unlock()

	job, err := s.load(id)
	if err != nil {
		return models.Job{}, err
	}
	if err := fn(&job); err != nil {
		return models.Job{}, err
	}
	if err := writeJSON(path, job); err != nil {
		return models.Job{}, err
	}
	return job, nil
}

func (s *JSONJobStore) Delete(ctx context.Context, id string) error {
	path, err := s.path(id)
	if err != nil {
		return err
	}
	unlock, err := s.Locker.Lock(ctx, jobKey(id))
	if err != nil {
		return err
	}
	defer unlock()

	var errs []error
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.Errorf(types.ErrNotFound, "job %s", id)
		}
		errs = append(errs, fmt.Errorf("%w: remove job record %s: %v", types.ErrIOFailure, id, err))
	}
	if s.Files != nil {
		if err := s.Files.DeleteScope(documents.JobScope(id)); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *JSONJobStore) List(_ context.Context) ([]models.Job, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.Job{}, nil
		}
		return nil, fmt.Errorf("%w: list jobs: %v", types.ErrIOFailure, err)
	}

	jobs := make([]models.Job, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		job, err := s.load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				continue
			}
			return nil, err
		}
		jobs = append(jobs, job)
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt < jobs[j].CreatedAt
	})
	return jobs, nil
}
