// Package fuzzy provides typo-tolerant record search over a fixed set of fields.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	sfuzzy "github.com/sahilm/fuzzy"

	"weighbridge/internal/domain"
)

// DefaultThreshold is the largest accepted edit distance per query character.
const DefaultThreshold = 0.3

// Option configures an Index.
type Option func(*Index)

// WithThreshold sets the tolerance threshold (0 accepts exact substrings only).
func WithThreshold(t float64) Option {
	return func(ix *Index) {
		if t >= 0 {
			ix.threshold = t
		}
	}
}

// Match is a scored search hit.
type Match struct {
	Record domain.Record
	Index  int     // position in the indexed collection
	Field  string  // field that produced the best score
	Score  float64 // 0 is a perfect match
	rank   int     // subsequence score, higher is better
}

// Index is an immutable search index over a record collection.
type Index struct {
	records   []domain.Record
	fields    []string
	keys      [][][]rune // lowercased field values per record
	threshold float64
}

// Build indexes records on the given searchable fields.
func Build(records []domain.Record, fields []string, opts ...Option) *Index {
	ix := &Index{
		records:   records,
		fields:    append([]string(nil), fields...),
		threshold: DefaultThreshold,
	}
	for _, opt := range opts {
		opt(ix)
	}

	ix.keys = make([][][]rune, len(records))
	for i, r := range records {
		row := make([][]rune, len(ix.fields))
		for j, f := range ix.fields {
			row[j] = fold(r.Get(f))
		}
		ix.keys[i] = row
	}
	return ix
}

// Len returns the number of indexed records.
func (ix *Index) Len() int { return len(ix.records) }

// Records returns the indexed collection in its original order.
func (ix *Index) Records() []domain.Record { return ix.records }

// Search returns records matching query, best match first.
// A blank query returns the indexed collection unchanged.
func (ix *Index) Search(query string) []domain.Record {
	if strings.TrimSpace(query) == "" {
		return ix.records
	}
	matches := ix.Matches(query)
	out := make([]domain.Record, len(matches))
	for i, m := range matches {
		out[i] = m.Record
	}
	return out
}

// Matches scores every record against query and returns the accepted
// ones sorted by score. A blank query yields no matches.
func (ix *Index) Matches(query string) []Match {
	q := fold(strings.TrimSpace(query))
	if len(q) == 0 {
		return nil
	}

	var matches []Match
	for i, row := range ix.keys {
		best := -1.0
		bestField := -1
		for j, key := range row {
			s := Score(q, key)
			if best < 0 || s < best {
				best, bestField = s, j
			}
			if best == 0 {
				break
			}
		}
		if bestField < 0 || best > ix.threshold {
			continue
		}
		field := ix.fields[bestField]
		matches = append(matches, Match{
			Record: ix.records[i],
			Index:  i,
			Field:  field,
			Score:  best,
			rank:   subsequenceRank(query, ix.records[i].Get(field)),
		})
	}

	sort.SliceStable(matches, func(a, b int) bool {
		if matches[a].Score != matches[b].Score {
			return matches[a].Score < matches[b].Score
		}
		if matches[a].rank != matches[b].rank {
			return matches[a].rank > matches[b].rank
		}
		return matches[a].Index < matches[b].Index
	})
	return matches
}

// Score returns the best edit distance of pattern against any substring of
// text, divided by the pattern length. Both arguments must already be folded.
func Score(pattern, text []rune) float64 {
	m := len(pattern)
	if m == 0 {
		return 0
	}
	return float64(substringDistance(pattern, text)) / float64(m)
}

// substringDistance computes the optimal string alignment distance between
// pattern and the closest substring of text. The match may start anywhere in
// text, so the first row is all zeros.
func substringDistance(p, t []rune) int {
	m, n := len(p), len(t)
	if n == 0 {
		return m
	}

	// three rolling rows: i-2, i-1, i
	prev2 := make([]int, n+1)
	prev := make([]int, n+1)
	cur := make([]int, n+1)

	for i := 1; i <= m; i++ {
		cur[0] = i
		for j := 1; j <= n; j++ {
			cost := 1
			if p[i-1] == t[j-1] {
				cost = 0
			}
			d := min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && p[i-1] == t[j-2] && p[i-2] == t[j-1] {
				d = min(d, prev2[j-2]+1)
			}
			cur[j] = d
		}
		prev2, prev, cur = prev, cur, prev2
	}

	best := prev[0]
	for j := 1; j <= n; j++ {
		if prev[j] < best {
			best = prev[j]
		}
	}
	return best
}

func subsequenceRank(query, text string) int {
	found := sfuzzy.Find(strings.TrimSpace(query), []string{text})
	if len(found) == 0 {
		return 0
	}
	return found[0].Score
}

func fold(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		out = append(out, unicode.ToLower(r))
	}
	return out
}
