// json_file.go
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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/localnerve/planning-portal/internal/types"
	"github.com/natefinch/atomic"
)

// readJSON decodes path into v. A missing file reports false and no error.
func readJSON(path string, v interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: read %s: %v", types.ErrIOFailure, filepath.Base(path), err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return true, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("%w: parse %s: %v", types.ErrIOFailure, filepath.Base(path), err)
	}
	return true, nil
}

// writeJSON replaces path with the encoding of v. Readers see the old or the new file, never a partial one.
func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %v", types.ErrIOFailure, filepath.Dir(path), err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: write %s: %v", types.ErrIOFailure, filepath.Base(path), err)
	}
	return nil
}

// collection is a JSON array file whose whole content is rewritten on every change.
type collection[T any] struct {
	path    string
	lockKey string
	locker  Locker
}

func (c *collection[T]) read() ([]T, error) {
	var items []T
	if _, err := readJSON(c.path, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// mutate runs fn over the current items under the collection lock and writes the result.
// An error from fn leaves the file untouched.
func (c *collection[T]) mutate(ctx context.Context, fn func([]T) ([]T, error)) error {
	unlock, err := c.locker.Lock(ctx, c.lockKey)
	if err != nil {
		return err
	}
	defer unlock()

	items, err := c.read()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	return writeJSON(c.path, items)
}
