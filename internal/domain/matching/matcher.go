package matching

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"rentalquotes/internal/domain/entities"
)

// TermSource is the slice of the catalog the matcher needs: the taxonomy
// terms in their natural order, and the first published product tagged with
// a term ("" when none is).
type TermSource interface {
	ListTerms(ctx context.Context) ([]entities.CatalogTerm, error)
	FirstPublishedProduct(ctx context.Context, termID string) (string, error)
}

// Config holds the fuzzy-match scores. These are uncalibrated heuristics,
// kept configurable rather than baked into the matching code.
type Config struct {
	// AcceptScore is the minimum best score a fuzzy candidate needs
	// (boundary inclusive).
	AcceptScore float64
	// TermContainsScore applies when the term name contains the vehicle name.
	TermContainsScore float64
	// NameContainsScore applies when the vehicle name contains the term name.
	NameContainsScore float64
}

func DefaultConfig() Config {
	return Config{AcceptScore: 75, TermContainsScore: 85, NameContainsScore: 80}
}

// minNameLength guards both the vehicle name and fuzzy candidate terms
// against false positives on noise.
const minNameLength = 3

// Result of one match attempt, also the memoization record.
type Result struct {
	ProductID string
	Strategy  string // "exact", "fuzzy" or "" when nothing matched
	Score     float64
	TermName  string
}

// Matcher resolves a free-text vehicle name to a catalog product id. It is
// read-only over catalog state and memoizes per vehicle-name string, so a
// Matcher is meant to live for a single derivation.
type Matcher struct {
	catalog TermSource
	cfg     Config

	mu   sync.Mutex
	memo map[string]Result
}

func New(catalog TermSource, cfg Config) *Matcher {
	return &Matcher{catalog: catalog, cfg: cfg, memo: make(map[string]Result)}
}

// Match returns the matched product id, or a zero Result when no catalog
// product could be resolved.
func (m *Matcher) Match(ctx context.Context, vehicleName string) (Result, error) {
	if utf8.RuneCountInString(strings.TrimSpace(vehicleName)) < minNameLength {
		return Result{}, nil
	}

	m.mu.Lock()
	cached, ok := m.memo[vehicleName]
	m.mu.Unlock()
	if ok {
		return cached, nil
	}

	res, err := m.match(ctx, vehicleName)
	if err != nil {
		return Result{}, err
	}

	m.mu.Lock()
	m.memo[vehicleName] = res
	m.mu.Unlock()
	return res, nil
}

func (m *Matcher) match(ctx context.Context, vehicleName string) (Result, error) {
	terms, err := m.catalog.ListTerms(ctx)
	if err != nil {
		return Result{}, err
	}

	// Strategy 1: exact taxonomy hit. Case-sensitive substring, per current
	// catalog semantics.
	for _, term := range terms {
		if strings.Contains(term.Name, vehicleName) {
			productID, err := m.catalog.FirstPublishedProduct(ctx, term.ID)
			if err != nil {
				return Result{}, err
			}
			if productID == "" {
				return Result{}, nil
			}
			return Result{ProductID: productID, Strategy: "exact", Score: 100, TermName: term.Name}, nil
		}
	}

	// Strategy 2: fuzzy similarity over all terms, first-encountered wins
	// ties.
	name := strings.ToLower(strings.TrimSpace(vehicleName))
	var best Result
	for _, term := range terms {
		termName := strings.ToLower(strings.TrimSpace(term.Name))
		if utf8.RuneCountInString(termName) < minNameLength {
			continue
		}
		score := m.score(name, termName)
		if score > best.Score {
			best = Result{Strategy: "fuzzy", Score: score, TermName: term.Name, ProductID: term.ID}
		}
	}
	if best.Score < m.cfg.AcceptScore {
		return Result{}, nil
	}

	productID, err := m.catalog.FirstPublishedProduct(ctx, best.ProductID)
	if err != nil {
		return Result{}, err
	}
	if productID == "" {
		return Result{}, nil
	}
	best.ProductID = productID
	return best, nil
}

func (m *Matcher) score(name, termName string) float64 {
	switch {
	case name == termName:
		return 100
	case strings.Contains(termName, name):
		return m.cfg.TermContainsScore
	case strings.Contains(name, termName):
		return m.cfg.NameContainsScore
	default:
		return SimilarityPercent(name, termName)
	}
}
