package models

import "errors"

const (
	ContainerCup  = "Cup"
	ContainerCone = "Cone"

	PaymentCash = "Cash"
	PaymentCard = "Card"

	DeliveryTakeaway = "Takeaway"
	DeliveryDelivery = "Delivery"
)

var (
	ErrInvalidName       = errors.New("name must be non-empty and contain no digits")
	ErrInvalidPhone      = errors.New("phone must be non-empty and contain no letters")
	ErrMissingCardNumber = errors.New("card payment requires a card number")
	ErrMissingAddress    = errors.New("delivery requires an address")
)

// OrderInput is the raw form state before validation.
type OrderInput struct {
	Name       string
	Phone      string
	Flavor     string
	Scoops     int
	Container  string
	Payment    string
	CardNumber string // only meaningful when Payment is Card
	Delivery   string
	Address    string // only meaningful when Delivery is Delivery
}

// Order is one completed transaction. Immutable once appended to the log.
type Order struct {
	ID           int     `json:"order_id"`
	CustomerName string  `json:"customer_name"`
	Phone        string  `json:"phone"`
	Flavor       string  `json:"flavor"`
	Scoops       int     `json:"scoops"`
	Container    string  `json:"container"`
	Payment      string  `json:"payment"`
	CardNumber   string  `json:"card_number,omitempty"`
	Delivery     string  `json:"delivery"`
	Address      string  `json:"address,omitempty"`
	Total        float64 `json:"total"`
	Timestamp    string  `json:"timestamp"`
	Summary      string  `json:"summary"`
}
