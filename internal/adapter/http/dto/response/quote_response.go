package response

import (
	"time"

	"rentalquotes/internal/domain/entities"
)

// QuoteResponse is the public view of a quote. It is keyed by the opaque
// quote hash; the internal id never leaves the service.
type QuoteResponse struct {
	QuoteHash string `json:"quote_hash"`

	CustomerName      string `json:"customer_name"`
	CustomerEmail     string `json:"customer_email"`
	CustomerPhone     string `json:"customer_phone,omitempty"`
	ContactPreference string `json:"contact_preference,omitempty"`

	VehicleName    string `json:"vehicle_name,omitempty"`
	VehicleDetails string `json:"vehicle_details,omitempty"`

	RentalDates      string  `json:"rental_dates,omitempty"`
	RentalDays       int     `json:"rental_days,omitempty"`
	RentalPrice      float64 `json:"rental_price,omitempty"`
	DepositAmount    float64 `json:"deposit_amount,omitempty"`
	MileageAllowance string  `json:"mileage_allowance,omitempty"`

	FormType string `json:"form_type,omitempty"`
	Status   string `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteHash:         q.QuoteHash,
		CustomerName:      q.CustomerName,
		CustomerEmail:     q.CustomerEmail,
		CustomerPhone:     q.CustomerPhone,
		ContactPreference: q.ContactPreference,
		VehicleName:       q.VehicleName,
		VehicleDetails:    q.VehicleDetails,
		RentalDates:       q.RentalDates,
		RentalDays:        q.RentalDays,
		RentalPrice:       q.RentalPrice,
		DepositAmount:     q.DepositAmount,
		MileageAllowance:  q.MileageAllowance,
		FormType:          q.FormType,
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}
