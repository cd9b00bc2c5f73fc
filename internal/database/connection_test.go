package database_test

import (
	"context"
	"strings"
	"testing"

	"github.com/localnerve/planning-portal/internal/config"
	"github.com/localnerve/planning-portal/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialectorSelection(t *testing.T) {
	for dbType, name := range map[string]string{
		"mysql":       "mysql",
		"mariadb":     "mysql",
		"postgres":    "postgres",
		"sqlite":      "sqlite",
		"sqlite-pure": "sqlite",
		"sqlserver":   "sqlserver",
	} {
		d, err := database.Dialector(&config.Config{DBType: dbType, DBHost: "db", DBPort: "3306", DBDatabase: "portal"})
		require.NoError(t, err, dbType)
		assert.Equal(t, name, d.Name(), dbType)
	}

	_, err := database.Dialector(&config.Config{DBType: "oracle"})
	assert.ErrorContains(t, err, "unsupported")
}

func TestConnectAndMigratePureSQLite(t *testing.T) {
	cfg := &config.Config{DBType: "sqlite-pure", DBDatabase: "file::memory:", DBConnectionLimit: 1}
	db, err := database.Connect(cfg, nil)
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.AutoMigrate(db))
	require.NoError(t, database.Ping(context.Background(), db))

	for _, table := range []string{"jobs", "tickets", "document_metadata", "intents", "catalog_assessments"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, hasColumn(db, "tickets", "payload"))
}

func hasColumn(db *gorm.DB, table, column string) bool {
	cols, err := db.Migrator().ColumnTypes(table)
	if err != nil {
		return false
	}
	for _, c := range cols {
		if strings.EqualFold(c.Name(), column) {
			return true
		}
	}
	return false
}
