package matching

import (
	"context"
	"testing"

	"rentalquotes/internal/domain/entities"
)

type fakeCatalog struct {
	terms     []entities.CatalogTerm
	products  map[string]string // term id -> first published product id
	listCalls int
}

func (f *fakeCatalog) ListTerms(context.Context) ([]entities.CatalogTerm, error) {
	f.listCalls++
	return f.terms, nil
}

func (f *fakeCatalog) FirstPublishedProduct(_ context.Context, termID string) (string, error) {
	return f.products[termID], nil
}

func TestMatch_ShortNamesNeverMatch(t *testing.T) {
	cat := &fakeCatalog{terms: []entities.CatalogTerm{{ID: "t1", Name: "X5"}}}
	m := New(cat, DefaultConfig())

	for _, name := range []string{"", "X", "X5", "  X5  "} {
		res, err := m.Match(context.Background(), name)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProductID != "" {
			t.Fatalf("expected no match for %q, got %+v", name, res)
		}
	}
	if cat.listCalls != 0 {
		t.Fatalf("catalog should not be consulted for short names")
	}
}

func TestMatch_ExactStrategy(t *testing.T) {
	cat := &fakeCatalog{
		terms: []entities.CatalogTerm{
			{ID: "t1", Name: "Ford Transit"},
			{ID: "t2", Name: "BMW X5 Black"},
		},
		products: map[string]string{"t2": "p202"},
	}
	m := New(cat, DefaultConfig())

	res, err := m.Match(context.Background(), "BMW X5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ProductID != "p202" || res.Strategy != "exact" {
		t.Fatalf("expected exact hit on p202, got %+v", res)
	}
}

func TestMatch_ExactTermWithoutPublishedProduct(t *testing.T) {
	cat := &fakeCatalog{
		terms: []entities.CatalogTerm{{ID: "t1", Name: "BMW X5 Black"}},
	}
	m := New(cat, DefaultConfig())

	res, err := m.Match(context.Background(), "BMW X5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ProductID != "" {
		t.Fatalf("expected no product, got %+v", res)
	}
}

func TestMatch_FuzzyStrategy(t *testing.T) {
	cat := &fakeCatalog{
		terms: []entities.CatalogTerm{
			{ID: "t1", Name: "Ford Transit"},
			{ID: "t2", Name: "BMW X5 Black"},
		},
		products: map[string]string{"t1": "p101", "t2": "p202"},
	}

	t.Run("case-insensitive equality", func(t *testing.T) {
		m := New(cat, DefaultConfig())
		res, err := m.Match(context.Background(), "ford transit")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProductID != "p101" || res.Strategy != "fuzzy" || res.Score != 100 {
			t.Fatalf("got %+v", res)
		}
	})

	t.Run("term contains name", func(t *testing.T) {
		m := New(cat, DefaultConfig())
		res, err := m.Match(context.Background(), "bmw x5")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProductID != "p202" || res.Score != 85 {
			t.Fatalf("got %+v", res)
		}
	})

	t.Run("name contains term", func(t *testing.T) {
		m := New(cat, DefaultConfig())
		res, err := m.Match(context.Background(), "lovely ford transit van")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProductID != "p101" || res.Score != 80 {
			t.Fatalf("got %+v", res)
		}
	})

	t.Run("noise rejected", func(t *testing.T) {
		m := New(cat, DefaultConfig())
		res, err := m.Match(context.Background(), "qqqqzzzz")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ProductID != "" {
			t.Fatalf("expected rejection, got %+v", res)
		}
	})
}

// A best score exactly at the acceptance threshold must be accepted.
func TestMatch_AcceptanceBoundaryInclusive(t *testing.T) {
	cat := &fakeCatalog{
		terms:    []entities.CatalogTerm{{ID: "t1", Name: "BMW X5 Black"}},
		products: map[string]string{"t1": "p202"},
	}
	cfg := DefaultConfig()
	cfg.TermContainsScore = cfg.AcceptScore
	m := New(cat, cfg)

	res, err := m.Match(context.Background(), "bmw x5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ProductID != "p202" || res.Score != cfg.AcceptScore {
		t.Fatalf("boundary score should be accepted, got %+v", res)
	}
}

func TestMatch_MemoizesPerName(t *testing.T) {
	cat := &fakeCatalog{
		terms:    []entities.CatalogTerm{{ID: "t1", Name: "BMW X5 Black"}},
		products: map[string]string{"t1": "p202"},
	}
	m := New(cat, DefaultConfig())

	for i := 0; i < 3; i++ {
		if _, err := m.Match(context.Background(), "BMW X5"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if cat.listCalls != 1 {
		t.Fatalf("expected a single catalog listing, got %d", cat.listCalls)
	}
}

func TestSimilarityPercent(t *testing.T) {
	if got := SimilarityPercent("hello", "hello"); got != 100 {
		t.Fatalf("identical strings should score 100, got %v", got)
	}
	if got := SimilarityPercent("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint strings should score 0, got %v", got)
	}
	if got := SimilarityPercent("", ""); got != 0 {
		t.Fatalf("empty strings should score 0, got %v", got)
	}
}
