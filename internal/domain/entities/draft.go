package entities

// DerivedQuoteDraft is the intermediate record produced by the resolve stage
// and enriched by the match and pricing stages before persistence. Absent
// data is represented as zero values; validation is deferred to the persist
// stage.
type DerivedQuoteDraft struct {
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	CustomerAge       string
	ContactPreference string
	RentalDates       string
	AdditionalNotes   string

	VehicleName string
	// VehicleDetails accumulates a free-text provenance trail (match strategy
	// used, computed pricing) for audit by the admin edit flow.
	VehicleDetails string

	// MatchedProductID is empty when neither an explicit product id nor a
	// catalog match was found; pricing is skipped entirely in that case.
	MatchedProductID string

	PricePerDay            float64
	RentalDays             int
	CalculatedRentalPrice  float64
	CalculatedPrepaidMiles string
	DepositAmount          float64

	FormType string
}
