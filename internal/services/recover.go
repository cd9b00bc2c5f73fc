// recover.go
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

package services

import (
	"context"
	"errors"

	"github.com/localnerve/planning-portal/internal/metrics"
	"github.com/localnerve/planning-portal/internal/models"
	"github.com/localnerve/planning-portal/internal/types"
	"go.uber.org/zap"
)

// RecoverReport counts the outcome of replaying pending intents.
type RecoverReport struct {
	Replayed  int `json:"replayed"`
	Discarded int `json:"discarded"`
	Failed    int `json:"failed"`
}

// Recover replays intents left behind by an interrupted dual write. Intents whose job or
// ticket no longer exists are discarded; transient failures are left for the next run.
func (p *Portal) Recover(ctx context.Context) (RecoverReport, error) {
	var report RecoverReport
	pending, err := p.Intents.Pending(ctx)
	if err != nil {
		return report, err
	}

	for _, intent := range pending {
		log := p.Logger.With(zap.String("intentId", intent.ID), zap.String("op", string(intent.Op)), zap.String("ticketId", intent.TicketID))

		outcome, err := p.replay(ctx, intent)
		if err != nil {
			report.Failed++
			metrics.RecoveredIntents.WithLabelValues("failed").Inc()
			log.Error("intent replay failed", zap.Error(err))
			continue
		}
		if err := p.Intents.Clear(ctx, intent.ID); err != nil {
			report.Failed++
			metrics.RecoveredIntents.WithLabelValues("failed").Inc()
			log.Error("intent clear failed", zap.Error(err))
			continue
		}
		switch outcome {
		case "replayed":
			report.Replayed++
		default:
			report.Discarded++
		}
		metrics.RecoveredIntents.WithLabelValues(outcome).Inc()
		log.Info("intent recovered", zap.String("outcome", outcome))
	}
	return report, nil
}

func (p *Portal) replay(ctx context.Context, intent models.Intent) (string, error) {
	switch intent.Op {
	case models.IntentConsultantPaid:
		if err := p.applyConsultantPaid(ctx, intent); err != nil {
			if errors.Is(err, types.ErrNotFound) {
				return "discarded", nil
			}
			return "", err
		}
		if _, err := p.setStatus(ctx, intent.TicketKind, intent.TicketID, intent.Status); err != nil {
			if errors.Is(err, types.ErrNotFound) || errors.Is(err, types.ErrInvalidTransition) {
				return "discarded", nil
			}
			return "", err
		}
		return "replayed", nil
	}
	return "discarded", nil
}
