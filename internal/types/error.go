// error.go
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

package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Error taxonomy shared by the stores, services and handlers.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrMissingJobReference  = errors.New("ticket has no job reference")
	ErrNoCompletedDocument  = errors.New("ticket has no completed document")
	ErrPayloadTooLarge      = errors.New("payload too large")
	ErrIOFailure            = errors.New("i/o failure")
	ErrPathTraversal        = errors.New("invalid file name")
	ErrInvalidInput         = errors.New("invalid input")
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Err     error  `json:"-"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// ValidationError carries per-field problems found while validating a request body.
type ValidationError struct {
	Message string
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Details)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Errorf wraps a taxonomy sentinel with a formatted message so callers keep errors.Is.
func Errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}

// StatusFor maps an error to its HTTP status code and error type.
func StatusFor(err error) (int, string) {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code, ce.Type
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, ErrInvalidStatus):
		return http.StatusBadRequest, "invalid_status"
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusBadRequest, "invalid_transition"
	case errors.Is(err, ErrMissingRequiredField):
		return http.StatusBadRequest, "missing_required_field"
	case errors.Is(err, ErrMissingJobReference):
		return http.StatusBadRequest, "missing_job_reference"
	case errors.Is(err, ErrNoCompletedDocument):
		return http.StatusBadRequest, "no_completed_document"
	case errors.Is(err, ErrPathTraversal):
		return http.StatusBadRequest, "path_traversal"
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "payload_too_large"
	case errors.Is(err, ErrIOFailure):
		return http.StatusInternalServerError, "io_failure"
	}
	return http.StatusInternalServerError, "unknown"
}
