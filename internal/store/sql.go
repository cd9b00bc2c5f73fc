// sql.go
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
	"github.com/localnerve/planning-portal/internal/documents"
	"gorm.io/gorm"
)

// NewSQLStores backs every store with db. Tables must already be migrated.
func NewSQLStores(db *gorm.DB, files *documents.Store) Stores {
	return Stores{
		Jobs:     NewSQLJobStore(db, files),
		Tickets:  NewSQLTicketStore(db),
		Metadata: NewSQLMetadataStore(db),
		Intents:  NewSQLIntentStore(db),
		Catalog:  NewSQLCatalogStore(db),
	}
}
