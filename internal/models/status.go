package models

import (
	"slices"

	"github.com/localnerve/planning-portal/internal/types"
)

var allowedStatuses = map[TicketKind][]TicketStatus{
	WorkTickets:       {StatusPending, StatusInProgress, StatusCompleted},
	ConsultantTickets: {StatusPending, StatusInProgress, StatusPaid, StatusCompleted},
}

// ticketTransitions lists the legal successors of each status. Self transitions are always legal.
var ticketTransitions = map[TicketKind]map[TicketStatus][]TicketStatus{
	WorkTickets: {
		StatusPending:    {StatusInProgress, StatusCompleted},
		StatusInProgress: {StatusPending, StatusCompleted},
		StatusCompleted:  {},
	},
	ConsultantTickets: {
		StatusPending:    {StatusInProgress, StatusPaid, StatusCompleted},
		StatusInProgress: {StatusPaid, StatusCompleted},
		StatusPaid:       {StatusInProgress, StatusCompleted},
		StatusCompleted:  {},
	},
}

// ValidateStatus checks status membership for a ticket kind.
func ValidateStatus(kind TicketKind, status TicketStatus) error {
	if !slices.Contains(allowedStatuses[kind], status) {
		return types.Errorf(types.ErrInvalidStatus, "%q is not a valid %s status", status, kind)
	}
	return nil
}

// CheckTransition validates membership and the transition table.
func CheckTransition(kind TicketKind, from, to TicketStatus) error {
	if err := ValidateStatus(kind, to); err != nil {
		return err
	}
	if from == "" {
		from = StatusPending
	}
	if from == to {
		return nil
	}
	if !slices.Contains(ticketTransitions[kind][from], to) {
		return types.Errorf(types.ErrInvalidTransition, "%s -> %s", from, to)
	}
	return nil
}

// AllowedStatuses returns the status set for a ticket kind.
func AllowedStatuses(kind TicketKind) []TicketStatus {
	return slices.Clone(allowedStatuses[kind])
}
