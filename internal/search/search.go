// Package search resolves free-text kiosk queries against the store's
// product category names, tolerating typos via edit distance.
package search

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type entry struct {
	canonical string
	alias     string
}

// Matcher maps normalised query phrases onto canonical category names.
type Matcher struct {
	entries []entry
}

// NewMatcher returns an empty matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Register adds a canonical name and any aliases that should resolve
// to it.
func (m *Matcher) Register(canonical string, aliases ...string) {
	norm := normalise(canonical)
	if norm == "" {
		return
	}
	m.entries = append(m.entries, entry{canonical: canonical, alias: norm})
	for _, a := range aliases {
		n := normalise(a)
		if n == "" {
			continue
		}
		m.entries = append(m.entries, entry{canonical: canonical, alias: n})
	}
}

// Match resolves a query to the best canonical name. Exact and prefix
// hits win outright; otherwise the closest alias within the edit-
// distance limit is chosen. Returns false when nothing is close enough.
func (m *Matcher) Match(query string) (string, bool) {
	q := normalise(query)
	if q == "" {
		return "", false
	}

	type candidate struct {
		canonical string
		score     float64
	}
	cands := make([]candidate, 0, len(m.entries))
	for _, e := range m.entries {
		if q == e.alias {
			cands = append(cands, candidate{e.canonical, 1.0})
			continue
		}
		if len(q) >= 2 && strings.HasPrefix(e.alias, q) {
			cands = append(cands, candidate{e.canonical, 0.9})
			continue
		}
		if len(q) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(q, e.alias)
		if dist > distanceLimit(len(e.alias)) {
			continue
		}
		cands = append(cands, candidate{e.canonical, 0.72 - 0.08*float64(dist)})
	}

	if len(cands) == 0 {
		return "", false
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].canonical < cands[j].canonical
		}
		return cands[i].score > cands[j].score
	})
	return cands[0].canonical, true
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
