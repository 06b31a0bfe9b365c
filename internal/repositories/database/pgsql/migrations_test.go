package pgsql_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tableDefinition returns the CREATE TABLE statement for table from the initial migration.
func tableDefinition(t *testing.T, table string) string {
	t.Helper()
	raw, err := os.ReadFile("../../../../migrations/000001_create_shift_tables.up.sql")
	require.NoError(t, err)

	re := regexp.MustCompile(`(?s)CREATE TABLE(?: IF NOT EXISTS)? ` + table + ` \((.*?)\n\);`)
	m := re.FindSubmatch(raw)
	require.NotNil(t, m, "table %s not found", table)
	return string(m[1])
}

func TestSchema_AmountsMustBePositive(t *testing.T) {
	for _, table := range []string{"shift_movements", "shift_incidents"} {
		def := tableDefinition(t, table)
		assert.Regexp(t, `amount\s+NUMERIC\(14, 2\)[^,\n]*CHECK \(amount > 0\)`, def, table)
		assert.NotContains(t, def, "amount >= 0", table)
	}
}
