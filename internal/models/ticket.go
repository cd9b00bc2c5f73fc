package models

import (
	"github.com/localnerve/planning-portal/internal/types"
)

// TicketKind selects one of the two ticket collections.
type TicketKind string

const (
	WorkTickets       TicketKind = "work-tickets"
	ConsultantTickets TicketKind = "consultant-tickets"
)

// TicketKinds lists every ticket collection.
var TicketKinds = []TicketKind{WorkTickets, ConsultantTickets}

// ParseTicketKind validates a ticket kind path segment.
func ParseTicketKind(s string) (TicketKind, bool) {
	switch TicketKind(s) {
	case WorkTickets, ConsultantTickets:
		return TicketKind(s), true
	}
	return "", false
}

type TicketStatus string

const (
	StatusPending    TicketStatus = "pending"
	StatusInProgress TicketStatus = "in-progress"
	StatusPaid       TicketStatus = "paid"
	StatusCompleted  TicketStatus = "completed"
)

// CompletedDocument is the deliverable attached to a ticket by an upload.
type CompletedDocument struct {
	FileName     string           `json:"fileName"`
	OriginalName string           `json:"originalName"`
	Type         string           `json:"type"`
	Size         types.FlexUint64 `json:"size"`
	UploadedAt   string           `json:"uploadedAt"`
	ReturnedAt   string           `json:"returnedAt,omitempty"`
}

// Ticket is a work ticket or a consultant ticket (work order).
type Ticket struct {
	ID                string             `json:"id"`
	Kind              TicketKind         `json:"-"`
	JobID             string             `json:"jobId,omitempty"`
	JobAddress        string             `json:"jobAddress,omitempty"`
	TicketType        string             `json:"ticketType,omitempty"`
	Category          string             `json:"category,omitempty"`
	ConsultantID      string             `json:"consultantId,omitempty"`
	ConsultantName    string             `json:"consultantName,omitempty"`
	Notes             string             `json:"notes,omitempty"`
	Status            TicketStatus       `json:"status"`
	CreatedAt         string             `json:"createdAt"`
	UpdatedAt         string             `json:"updatedAt,omitempty"`
	CompletedDocument *CompletedDocument `json:"completedDocument,omitempty"`
}

// Clone returns a deep copy so store callers never share the completed document pointer.
func (t Ticket) Clone() Ticket {
	if t.CompletedDocument != nil {
		doc := *t.CompletedDocument
		t.CompletedDocument = &doc
	}
	return t
}

// Label is the human readable name of the work the ticket asks for.
func (t Ticket) Label() string {
	if t.Kind == ConsultantTickets {
		return t.Category
	}
	return t.TicketType
}
