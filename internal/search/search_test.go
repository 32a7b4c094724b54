package search

import "testing"

func newStoreMatcher() *Matcher {
	m := NewMatcher()
	m.Register("Milk", "dairy milk")
	m.Register("Cheese")
	m.Register("Alcohol", "beer", "wine")
	m.Register("Soft Drinks", "soda")
	m.Register("Cleaning Agents", "detergent")
	return m
}

func TestMatchExact(t *testing.T) {
	m := newStoreMatcher()
	got, ok := m.Match("cheese")
	if !ok || got != "Cheese" {
		t.Fatalf("Match(cheese) = %q, %v", got, ok)
	}
}

func TestMatchAlias(t *testing.T) {
	m := newStoreMatcher()
	got, ok := m.Match("beer")
	if !ok || got != "Alcohol" {
		t.Fatalf("Match(beer) = %q, %v", got, ok)
	}
}

func TestMatchNormalisesPunctuationAndCase(t *testing.T) {
	m := newStoreMatcher()
	for _, q := range []string{"Soft-Drinks", "  SOFT   DRINKS ", "soft_drinks"} {
		got, ok := m.Match(q)
		if !ok || got != "Soft Drinks" {
			t.Fatalf("Match(%q) = %q, %v", q, got, ok)
		}
	}
}

func TestMatchPrefix(t *testing.T) {
	m := newStoreMatcher()
	got, ok := m.Match("chee")
	if !ok || got != "Cheese" {
		t.Fatalf("Match(chee) = %q, %v", got, ok)
	}
	// Single-letter queries are too ambiguous to prefix-match.
	if _, ok := m.Match("c"); ok {
		t.Fatalf("one-letter queries must not match")
	}
}

func TestMatchTolerantOfTypos(t *testing.T) {
	m := newStoreMatcher()
	cases := map[string]string{
		"chese":     "Cheese",    // dropped letter
		"detergant": "Cleaning Agents",
		"winne":     "Alcohol",
	}
	for q, want := range cases {
		got, ok := m.Match(q)
		if !ok || got != want {
			t.Fatalf("Match(%q) = %q, %v; want %q", q, got, ok, want)
		}
	}
}

func TestMatchRejectsFarQueries(t *testing.T) {
	m := newStoreMatcher()
	for _, q := range []string{"xylophone", "zzzzz", ""} {
		if got, ok := m.Match(q); ok {
			t.Fatalf("Match(%q) unexpectedly hit %q", q, got)
		}
	}
}

func TestExactBeatsFuzzy(t *testing.T) {
	m := NewMatcher()
	m.Register("Bread")
	m.Register("Beard") // one edit away from bread
	got, ok := m.Match("bread")
	if !ok || got != "Bread" {
		t.Fatalf("exact hits must win, got %q, %v", got, ok)
	}
}

func TestRegisterIgnoresEmptyNames(t *testing.T) {
	m := NewMatcher()
	m.Register("   ")
	m.Register("!!!")
	if _, ok := m.Match("anything"); ok {
		t.Fatalf("a matcher with no usable entries must not match")
	}
}
