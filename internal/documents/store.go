// store.go
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

package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/localnerve/planning-portal/internal/logging"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
)

// DefaultMaxBytes is the upload ceiling when none is configured.
const DefaultMaxBytes int64 = 20 << 20

// Scope is a directory, relative to the store root, that owns a set of files.
type Scope string

// JobScope holds the documents uploaded directly against a job.
func JobScope(jobID string) Scope {
	return Scope("jobs/" + jobID)
}

// StagingScope holds completed ticket documents awaiting return.
func StagingScope(kind models.TicketKind) Scope {
	return Scope("staging/" + string(kind))
}

// CatalogScope holds admin-authored assessment files.
func CatalogScope(variant models.CatalogVariant) Scope {
	return Scope("catalog/" + string(variant))
}

// File describes the bytes handed to Put.
type File struct {
	OriginalName string
	Type         string
	Size         int64 // -1 when unknown
	Reader       io.Reader
}

// Store persists uploaded files under Root.
type Store struct {
	Root     string
	MaxBytes int64
	Logger   *zap.Logger
	Now      func() time.Time
}

// New creates a document store rooted at root.
func New(root string, maxBytes int64, logger *zap.Logger) *Store {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Store{
		Root:     root,
		MaxBytes: maxBytes,
		Logger:   logging.OrNop(logger),
		Now:      time.Now,
	}
}

// Put writes f under scope/storedName, replacing any file already there.
func (s *Store) Put(ctx context.Context, scope Scope, storedName string, f File) (models.DocumentRef, error) {
	if f.Size > s.MaxBytes {
		return models.DocumentRef{}, types.Errorf(types.ErrPayloadTooLarge, "%d bytes exceeds the %d byte limit", f.Size, s.MaxBytes)
	}
	if err := ValidateName(storedName); err != nil {
		return models.DocumentRef{}, err
	}
	if err := ctx.Err(); err != nil {
		return models.DocumentRef{}, err
	}

	dir, err := s.dir(scope)
	if err != nil {
		return models.DocumentRef{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.DocumentRef{}, fmt.Errorf("%w: create %s: %v", types.ErrIOFailure, scope, err)
	}

	counter := &limitedReader{r: f.Reader, remaining: s.MaxBytes}
	if err := atomic.WriteFile(filepath.Join(dir, storedName), counter); err != nil {
		if counter.exceeded {
			return models.DocumentRef{}, types.Errorf(types.ErrPayloadTooLarge, "upload exceeds the %d byte limit", s.MaxBytes)
		}
		return models.DocumentRef{}, fmt.Errorf("%w: write %s/%s: %v", types.ErrIOFailure, scope, storedName, err)
	}

	return models.DocumentRef{
		FileName:     storedName,
		OriginalName: f.OriginalName,
		Type:         ContentType(f.Type, f.OriginalName),
		UploadedAt:   models.Timestamp(s.Now()),
		Size:         types.FlexUint64(counter.read),
	}, nil
}

// Open opens scope/name for reading. Missing files fail with ErrNotFound.
func (s *Store) Open(scope Scope, name string) (*os.File, fs.FileInfo, error) {
	if err := ValidateName(name); err != nil {
		return nil, nil, err
	}
	dir, err := s.dir(scope)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, types.Errorf(types.ErrNotFound, "file %s", name)
		}
		return nil, nil, fmt.Errorf("%w: open %s: %v", types.ErrIOFailure, name, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, fmt.Errorf("%w: stat %s: %v", types.ErrIOFailure, name, err)
	}
	if info.IsDir() {
		file.Close()
		return nil, nil, types.Errorf(types.ErrNotFound, "file %s", name)
	}
	return file, info, nil
}

// Exists reports whether scope/name is a stored file.
func (s *Store) Exists(scope Scope, name string) bool {
	file, _, err := s.Open(scope, name)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Delete removes scope/name. A file that is already gone is logged, not an error.
func (s *Store) Delete(scope Scope, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	dir, err := s.dir(scope)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Logger.Debug("document already removed", zap.String("scope", string(scope)), zap.String("file", name))
			return nil
		}
		return fmt.Errorf("%w: remove %s: %v", types.ErrIOFailure, name, err)
	}
	return nil
}

// DeleteScope removes the scope directory and everything under it.
func (s *Store) DeleteScope(scope Scope) error {
	dir, err := s.dir(scope)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("%w: remove %s: %v", types.ErrIOFailure, scope, err)
	}
	return nil
}

func (s *Store) dir(scope Scope) (string, error) {
	for _, part := range strings.Split(string(scope), "/") {
		if err := ValidateName(part); err != nil {
			return "", err
		}
	}
	return filepath.Join(s.Root, filepath.FromSlash(string(scope))), nil
}

// ValidateName rejects empty names and anything that could leave its directory.
func ValidateName(name string) error {
	if name == "" {
		return types.Errorf(types.ErrMissingRequiredField, "fileName")
	}
	if name == "." || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return types.Errorf(types.ErrPathTraversal, "%q", name)
	}
	return nil
}

// CleanOriginalName reduces a client supplied file name to its base name.
func CleanOriginalName(name string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "/" || base == "." {
		return "", types.Errorf(types.ErrMissingRequiredField, "file")
	}
	if err := ValidateName(base); err != nil {
		return "", err
	}
	return base, nil
}

// StagingName is the stored name of a ticket's completed document.
func StagingName(ticketID, originalName string) string {
	return ticketID + "-" + originalName
}

// JobDocumentName is the stored name of a document uploaded against a job.
func JobDocumentName(docID string, uploadedAt time.Time, originalName string) string {
	return fmt.Sprintf("%s-%d-%s", docID, uploadedAt.UnixMilli(), originalName)
}

// ContentType prefers the declared type and falls back to the file extension. A generic
// application/octet-stream declaration counts as undeclared.
func ContentType(declared, name string) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(filepath.Ext(name)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}

// limitedReader fails once more than remaining bytes are read.
type limitedReader struct {
	r         io.Reader
	remaining int64
	read      int64
	exceeded  bool
}

func (l *limitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.remaining {
		l.exceeded = true
		return n, types.ErrPayloadTooLarge
	}
	return n, err
}
