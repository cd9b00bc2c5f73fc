package models

import "time"

// JobRecord is the SQL row for a job. The record itself lives in Payload.
type JobRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	Payload   JSON   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (JobRecord) TableName() string {
	return "jobs"
}

// TicketRecord is the SQL row for a ticket of either kind.
type TicketRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	Kind      string `gorm:"size:32;not null;index:idx_tickets_kind"`
	JobID     string `gorm:"size:64;index:idx_tickets_job"`
	Status    string `gorm:"size:32"`
	Seq       int64  `gorm:"not null;default:0"`
	Payload   JSON   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (TicketRecord) TableName() string {
	return "tickets"
}

// MetadataRecord is the SQL row for a staged ticket document.
type MetadataRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	TicketID  string `gorm:"size:64;not null;uniqueIndex:idx_metadata_ticket"`
	JobID     string `gorm:"size:64;index"`
	Seq       int64  `gorm:"not null;default:0"`
	Payload   JSON   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MetadataRecord) TableName() string {
	return "document_metadata"
}

// IntentRecord is the SQL row for a pending dual write.
type IntentRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	Payload   JSON   `gorm:"not null"`
	CreatedAt time.Time
}

func (IntentRecord) TableName() string {
	return "intents"
}

// CatalogRecord is the SQL row for a catalog assessment.
type CatalogRecord struct {
	ID        string `gorm:"primaryKey;size:64"`
	Variant   string `gorm:"size:64;not null;index:idx_catalog_variant"`
	Seq       int64  `gorm:"not null;default:0"`
	Payload   JSON   `gorm:"not null"`
	CreatedAt time.Time
}

func (CatalogRecord) TableName() string {
	return "catalog_assessments"
}
