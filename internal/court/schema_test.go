package court

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository's statements and schema.sql describe the same table from two
// places that are easy to edit independently. These tests parse both sides so
// a column added to a query without a matching DDL change fails in go test
// instead of at runtime against the database.

var (
	insertColumnsRe = regexp.MustCompile(`(?s)INSERT INTO public\.courts \(([^)]+)\)`)
	updateSetRe     = regexp.MustCompile(`(?s)UPDATE public\.courts\s+SET (.*?)WHERE`)
	assignedRe      = regexp.MustCompile(`([a-z_]+) =`)
	courtAliasRe    = regexp.MustCompile(`\bc\.([a-z_]+)`)
	facilityAliasRe = regexp.MustCompile(`\bf\.([a-z_]+)`)
)

// schemaColumns returns the column names declared for a table in schema.sql.
func schemaColumns(t *testing.T, table string) map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile("../../schema.sql")
	require.NoError(t, err)

	tableRe := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS public\.` + table + `\s*\((.*?)\n\);`)
	m := tableRe.FindStringSubmatch(string(ddl))
	require.NotNil(t, m, "schema.sql does not declare public.%s", table)

	cols := make(map[string]bool)
	for _, line := range strings.Split(m[1], "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || strings.EqualFold(fields[0], "UNIQUE") {
			continue
		}
		cols[fields[0]] = true
	}
	require.NotEmpty(t, cols)
	return cols
}

func TestCourtQueriesMatchSchema(t *testing.T) {
	src, err := os.ReadFile("repository.go")
	require.NoError(t, err)
	text := string(src)

	courts := schemaColumns(t, "courts")
	facilities := schemaColumns(t, "facilities")

	var courtCols []string

	inserts := insertColumnsRe.FindAllStringSubmatch(text, -1)
	require.NotEmpty(t, inserts, "no court insert statement found")
	for _, m := range inserts {
		for _, col := range strings.Split(m[1], ",") {
			courtCols = append(courtCols, strings.TrimSpace(col))
		}
	}

	updates := updateSetRe.FindAllStringSubmatch(text, -1)
	require.NotEmpty(t, updates, "no court update statement found")
	for _, m := range updates {
		for _, a := range assignedRe.FindAllStringSubmatch(m[1], -1) {
			courtCols = append(courtCols, a[1])
		}
	}

	// Alias-qualified select columns. Go identifiers after the receiver are
	// exported (upper case), so the lower-case pattern only matches SQL.
	for _, m := range courtAliasRe.FindAllStringSubmatch(text, -1) {
		courtCols = append(courtCols, m[1])
	}

	for _, col := range courtCols {
		assert.True(t, courts[col], "query names courts.%s, which schema.sql does not declare", col)
	}

	for _, m := range facilityAliasRe.FindAllStringSubmatch(text, -1) {
		col := m[1]
		assert.True(t, facilities[col], "query names facilities.%s, which schema.sql does not declare", col)
	}
}
