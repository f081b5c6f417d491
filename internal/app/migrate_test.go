package app

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestModels_OneOwnerPerTable(t *testing.T) {
	cache := &sync.Map{}
	seen := map[string]bool{}

	for _, m := range Models() {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err)
		assert.False(t, seen[s.Table], "table %s is owned twice", s.Table)
		seen[s.Table] = true
	}

	for _, table := range []string{"employees", "departments", "payroll_runs", "expense_claims", "import_jobs", "outbox_events"} {
		assert.True(t, seen[table], "missing %s", table)
	}
}
