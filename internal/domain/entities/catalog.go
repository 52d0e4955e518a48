package entities

// CatalogTerm is one vehicle taxonomy term from the product catalog.
// Iteration order of terms is the catalog's natural order; the matcher
// relies on it for tie-breaking.
type CatalogTerm struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog attribute names read by the pricing stage.
const (
	AttrPricePerDay  = "price_per_day"
	AttrPrepaidMiles = "pre_paid_miles"
	AttrDeposit      = "deposit"
)
