// migrate.go
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

	"github.com/localnerve/planning-portal/internal/models"
	"go.uber.org/zap"
)

// NormalizeConsultants rewrites every job so each consultants category is stored as an
// array. Records decode either shape, so rewriting through the store is enough.
func (p *Portal) NormalizeConsultants(ctx context.Context) (int, error) {
	jobs, err := p.Jobs.List(ctx)
	if err != nil {
		return 0, err
	}
	rewritten := 0
	for _, listed := range jobs {
		if len(listed.Consultants) == 0 {
			continue
		}
		if _, err := p.Jobs.Update(ctx, listed.ID, func(*models.Job) error { return nil }); err != nil {
			return rewritten, err
		}
		rewritten++
		p.Logger.Debug("normalized consultants", zap.String("jobId", listed.ID))
	}
	return rewritten, nil
}
