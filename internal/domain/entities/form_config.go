package entities

// FieldSource selects how a dual-mode mapping obtains its value: from a
// submitted form field, or from a smart-tag/fixed-value template.
type FieldSource string

const (
	FieldSourceField    FieldSource = "field"
	FieldSourceSmartTag FieldSource = "smart_tag"
)

// Quote field names addressable by QuoteFieldMappings.
const (
	QuoteFieldCustomerName      = "customer_name"
	QuoteFieldCustomerEmail     = "customer_email"
	QuoteFieldCustomerPhone     = "customer_phone"
	QuoteFieldCustomerAge       = "customer_age"
	QuoteFieldContactPreference = "contact_preference"
	QuoteFieldRentalDates       = "rental_dates"
	QuoteFieldAdditionalNotes   = "additional_notes"
)

// FieldMappingConfig is the per-form mapping owned by the settings
// subsystem; this service consumes it read-only.
//
// Storage model (DynamoDB):
//   - PK: form_id
//
// Invariant: for each dual-mode field exactly one source mode is active; the
// inactive alternative is ignored even when both values are present.
type FieldMappingConfig struct {
	FormID string `json:"form_id"`

	// QuoteFieldMappings maps quote field name -> form field id for the
	// plain fields.
	QuoteFieldMappings map[string]string `json:"quote_field_mappings"`

	VehicleSource   FieldSource `json:"vehicle_source"`
	VehicleFieldID  string      `json:"vehicle_field_id,omitempty"`
	VehicleSmartTag string      `json:"vehicle_smart_tag,omitempty"`

	ProductIDSource   FieldSource `json:"product_id_source"`
	ProductIDFieldID  string      `json:"product_id_field_id,omitempty"`
	ProductIDSmartTag string      `json:"product_id_smart_tag,omitempty"`

	// FormType is a free-form category label attached to derived quotes.
	FormType string `json:"form_type,omitempty"`
}
