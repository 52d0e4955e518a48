package entities

import "time"

// QuoteStatus represents the lifecycle of a rental quote.
//
// Domain notes:
//   - Happy path is pending -> quoted -> paid.
//   - A quick-send resend may bounce a quote between pending and quoted, but
//     a quoted or paid quote is never moved back to pending by this service.

type QuoteStatus string

const (
	QuoteStatusPending QuoteStatus = "pending"
	QuoteStatusQuoted  QuoteStatus = "quoted"
	QuoteStatusPaid    QuoteStatus = "paid"
)

// Quote is the rental quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - A guard item keyed "hash#<quote_hash>" enforces hash uniqueness and
//     doubles as the hash -> id lookup.
//
// Identity:
//   - QuoteHash is opaque, globally unique, generated once at creation and
//     never regenerated. It is the only identifier exposed in public URLs.
type Quote struct {
	ID        string `json:"id"`
	QuoteHash string `json:"quote_hash"`

	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone,omitempty"`
	CustomerAge       string `json:"customer_age,omitempty"`
	ContactPreference string `json:"contact_preference,omitempty"`

	VehicleName    string `json:"vehicle_name,omitempty"`
	VehicleDetails string `json:"vehicle_details,omitempty"`
	ProductID      string `json:"product_id,omitempty"`

	// RentalDates keeps the raw submitted text; it is never reparsed after
	// storage.
	RentalDates      string  `json:"rental_dates,omitempty"`
	RentalDays       int     `json:"rental_days,omitempty"`
	RentalPrice      float64 `json:"rental_price,omitempty"`
	DepositAmount    float64 `json:"deposit_amount,omitempty"`
	MileageAllowance string  `json:"mileage_allowance,omitempty"`

	FormType string `json:"form_type,omitempty"`

	IPAddress   string `json:"ip_address,omitempty"`
	UserAgent   string `json:"user_agent,omitempty"`
	ReferrerURL string `json:"referrer_url,omitempty"`

	Status QuoteStatus `json:"status"`

	QuickSendUsed   bool       `json:"quick_send_used"`
	QuickSendUsedAt *time.Time `json:"quick_send_used_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
