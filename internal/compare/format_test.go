package compare

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	compSet, err := newCompareEngine(t).Compare(context.Background(), testConfiguration(), CompareOptions{
		BaseScenarioName: "base",
		Alternatives:     []string{"lean", "aggressive"},
	})
	require.NoError(t, err)
	compSet.ConfigPath = "test.yaml"
	return compSet
}

func TestTableFormatter(t *testing.T) {
	out := (&TableFormatter{}).Format(sampleComparisonSet(t))

	assert.Contains(t, out, "SCENARIO COMPARISON")
	assert.Contains(t, out, "Base Scenario: base")
	assert.Contains(t, out, "Configuration: test.yaml")
	assert.Contains(t, out, "base (base)")
	assert.Contains(t, out, "lean")
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "COMPARISON TO BASE")
	assert.Contains(t, out, "RECOMMENDATIONS")
	// Lean underperforms; its value delta prints with a minus sign.
	assert.Contains(t, out, "-311808")
}

func TestCSVFormatter(t *testing.T) {
	out, err := (&CSVFormatter{}).Format(sampleComparisonSet(t))
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4, "header, base, two alternatives")

	assert.Equal(t, "Scenario", rows[0][0])
	assert.Equal(t, []string{"base", "base"}, rows[1][:2])
	assert.Equal(t, []string{"lean", "alternative"}, rows[2][:2])
	assert.Equal(t, "596736.00", rows[1][2])
}

func TestJSONFormatterCompare(t *testing.T) {
	compSet := sampleComparisonSet(t)

	pretty, err := (&JSONFormatter{Pretty: true}).Format(compSet)
	require.NoError(t, err)
	assert.Contains(t, pretty, "\n  \"baseScenarioName\": \"base\"")

	compact, err := (&JSONFormatter{}).Format(compSet)
	require.NoError(t, err)

	var decoded ComparisonSet
	require.NoError(t, json.Unmarshal([]byte(compact), &decoded))
	assert.Equal(t, "base", decoded.BaseScenarioName)
	require.Len(t, decoded.AlternativeResults, 2)
	assert.Equal(t, compSet.Recommendations, decoded.Recommendations)
}
