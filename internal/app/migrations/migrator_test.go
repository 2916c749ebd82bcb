package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationVersion(t *testing.T) {
	tests := []struct {
		filename string
		version  string
	}{
		{"001_init.sql", "001"},
		{"002_add_reviews_table.sql", "002"},
		{"010_no_description.sql", "010"},
		{"nounderscore.sql", "nounderscore.sql"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.version, migrationVersion(tc.filename), tc.filename)
	}
}
