package models

// IntentOp names a recorded multi-store write.
type IntentOp string

// IntentConsultantPaid upserts the job consultant assignment then sets the ticket status.
const IntentConsultantPaid IntentOp = "consultant.paid"

// Intent is a write-ahead record of a dual write across the job and ticket stores.
// It is cleared once both writes land; anything left over is replayed at startup.
type Intent struct {
	ID             string       `json:"id"`
	Op             IntentOp     `json:"op"`
	TicketKind     TicketKind   `json:"ticketKind"`
	TicketID       string       `json:"ticketId"`
	JobID          string       `json:"jobId"`
	Category       string       `json:"category"`
	ConsultantID   string       `json:"consultantId"`
	ConsultantName string       `json:"consultantName,omitempty"`
	Status         TicketStatus `json:"status"`
	CreatedAt      string       `json:"createdAt"`
}
