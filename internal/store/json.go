// json.go
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
	"path/filepath"

	"github.com/localnerve/planning-portal/internal/documents"
)

// NewJSONStores lays the JSON backend out under dataDir:
//
//	jobs/{id}.json
//	tickets/{kind}.json
//	metadata/documents.json
//	intents/pending.json
//	catalog/{variant}.json
func NewJSONStores(dataDir string, locker Locker, files *documents.Store) Stores {
	return Stores{
		Jobs:     NewJSONJobStore(filepath.Join(dataDir, "jobs"), locker, files),
		Tickets:  NewJSONTicketStore(filepath.Join(dataDir, "tickets"), locker),
		Metadata: NewJSONMetadataStore(filepath.Join(dataDir, "metadata", "documents.json"), locker),
		Intents:  NewJSONIntentStore(filepath.Join(dataDir, "intents", "pending.json"), locker),
		Catalog:  NewJSONCatalogStore(filepath.Join(dataDir, "catalog"), locker),
	}
}
