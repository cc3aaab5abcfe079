package fuzzy

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/domain"
)

func customers() []domain.Record {
	return []domain.Record{
		{"name": "Rock Trucking", "id": "CUST-1000", "location": "Louisville, GA"},
		{"name": "Red Excavating", "id": "CUST-1001", "location": "Nashville, IN"},
		{"name": "Cedar Enterprises", "id": "CUST-1002", "location": "Knoxville, FL"},
		{"name": "Blue Builders", "id": "CUST-1007", "location": "Charlotte, NC"},
		{"name": "Green Excavating", "id": "CUST-1008", "location": "Raleigh, NC"},
	}
}

func trucks(n int) []domain.Record {
	out := make([]domain.Record, n)
	for i := range out {
		out[i] = domain.Record{"id": fmt.Sprintf("TRK-%d", 1000+i), "driver": "Driver"}
	}
	return out
}

func TestBlankQueryReturnsOriginalCollection(t *testing.T) {
	t.Parallel()
	recs := customers()
	ix := Build(recs, []string{"name", "id"})

	for _, q := range []string{"", "   ", "\t"} {
		got := ix.Search(q)
		require.Len(t, got, len(recs))
		for i := range recs {
			assert.Equal(t, recs[i]["id"], got[i]["id"], "order must be preserved for %q", q)
		}
	}
	assert.Nil(t, ix.Matches(" "), "blank queries are never scored")
}

func TestExactIDRanksFirst(t *testing.T) {
	t.Parallel()
	ix := Build(trucks(60), []string{"id", "driver"})

	got := ix.Search("TRK-1057")
	require.NotEmpty(t, got)
	assert.Equal(t, "TRK-1057", got[0]["id"])
}

func TestToleratesTypos(t *testing.T) {
	t.Parallel()
	ix := Build(customers(), []string{"name", "id", "location"})

	cases := map[string]string{
		"red excavting": "CUST-1001", // deletion
		"Cedra":         "CUST-1002", // transposition
		"blue bulders":  "CUST-1007",
		"ROCK TRUCKING": "CUST-1000", // case
		"ville, GA":     "CUST-1000", // substring of a later field
	}
	for q, want := range cases {
		got := ix.Search(q)
		require.NotEmpty(t, got, "query %q", q)
		assert.Equal(t, want, got[0]["id"], "query %q", q)
	}
}

func TestRejectsUnrelatedText(t *testing.T) {
	t.Parallel()
	ix := Build(customers(), []string{"name", "id", "location"})

	assert.Empty(t, ix.Search("zzzzqqqq"))
	assert.Empty(t, ix.Search("xylophone"))
}

func TestResultsAreInNonIncreasingRelevance(t *testing.T) {
	t.Parallel()
	ix := Build(append(customers(), trucks(30)...), []string{"name", "id", "location"})

	for _, q := range []string{"excavating", "TRK-101", "CUST-100", "nc", "Raleigh"} {
		matches := ix.Matches(q)
		for i := 1; i < len(matches); i++ {
			assert.LessOrEqual(t, matches[i-1].Score, matches[i].Score, "query %q position %d", q, i)
		}
	}
}

func TestThresholdOption(t *testing.T) {
	t.Parallel()
	strict := Build(customers(), []string{"name"}, WithThreshold(0))
	assert.Empty(t, strict.Search("red excavting"), "no errors allowed at threshold 0")
	assert.Len(t, strict.Search("excavating"), 2)

	loose := Build(customers(), []string{"name"}, WithThreshold(0.5))
	assert.NotEmpty(t, loose.Search("rde excvating"))
}

func TestEqualScoresKeepOriginalOrder(t *testing.T) {
	t.Parallel()
	recs := []domain.Record{
		{"id": "A", "name": "Gravel #57"},
		{"id": "B", "name": "Gravel #57"},
	}
	got := Build(recs, []string{"name"}).Search("gravel #57")
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0]["id"])
	assert.Equal(t, "B", got[1]["id"])
}

func TestScore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0.0, Score([]rune("abc"), []rune("xxabcxx")))
	assert.Equal(t, 0.25, Score([]rune("abdc"), []rune("abcd")), "adjacent swap costs one edit")
	assert.Equal(t, 1.0, Score([]rune("abc"), nil))
	assert.Equal(t, 0.0, Score(nil, []rune("abc")))
}
