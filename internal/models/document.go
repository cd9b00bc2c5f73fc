package models

import (
	"time"

	"github.com/localnerve/planning-portal/internal/types"
)

// TimeLayout is the ISO-8601 form written into every record (millisecond precision, UTC).
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t the way the portal stores timestamps.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTimestamp parses a stored timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// DocumentRef points at a stored file. Its identity is the key it is stored under.
type DocumentRef struct {
	FileName     string           `json:"fileName"`
	OriginalName string           `json:"originalName"`
	Type         string           `json:"type"`
	UploadedAt   string           `json:"uploadedAt"`
	Size         types.FlexUint64 `json:"size"`
	ReturnedAt   string           `json:"returnedAt,omitempty"`
	URL          string           `json:"url,omitempty"`
}

// DocumentMetadata is the secondary index of staged ticket documents used by download routes.
type DocumentMetadata struct {
	ID           string           `json:"id"`
	TicketID     string           `json:"ticketId"`
	TicketKind   TicketKind       `json:"ticketKind"`
	JobID        string           `json:"jobId"`
	FileName     string           `json:"fileName"`
	OriginalName string           `json:"originalName"`
	Type         string           `json:"type"`
	Size         types.FlexUint64 `json:"size"`
	UploadedAt   string           `json:"uploadedAt"`
	ReturnedAt   string           `json:"returnedAt,omitempty"`
}

// Deliverable is a returned ticket document as seen from its job.
type Deliverable struct {
	TicketID   string            `json:"ticketId"`
	TicketKind TicketKind        `json:"ticketKind"`
	Label      string            `json:"label"`
	Document   CompletedDocument `json:"document"`
	URL        string            `json:"url"`
}
