package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"velvet-cone/models"
	"velvet-cone/store"
)

// Intake turns raw form input into immutable orders: validate, price,
// assign an id, stamp the time, and append to the order log.
type Intake struct {
	menu *store.MenuStore
	log  *store.OrderLog
	rng  *rand.Rand
	now  func() time.Time
}

func NewIntake(menu *store.MenuStore, log *store.OrderLog) *Intake {
	return &Intake{
		menu: menu,
		log:  log,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

// ValidateInput checks the form fields in a fixed order and returns the
// first failure. Phone is deliberately loose: any length and punctuation
// pass, only letters are rejected.
func ValidateInput(in models.OrderInput) error {
	if strings.TrimSpace(in.Name) == "" || containsDigit(in.Name) {
		return models.ErrInvalidName
	}
	if strings.TrimSpace(in.Phone) == "" || containsLetter(in.Phone) {
		return models.ErrInvalidPhone
	}
	if in.Payment == models.PaymentCard && strings.TrimSpace(in.CardNumber) == "" {
		return models.ErrMissingCardNumber
	}
	if in.Delivery == models.DeliveryDelivery && strings.TrimSpace(in.Address) == "" {
		return models.ErrMissingAddress
	}
	return nil
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// BuildSummary renders the ASCII order summary for the given form state
// and total. It is pure and safe to call mid-entry: a blank name shows
// as "Customer" and missing card/address fields show bracketed
// placeholders, so the same text serves the live preview and the final
// receipt.
func BuildSummary(in models.OrderInput, total float64) string {
	name := in.Name
	if name == "" {
		name = "Customer"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Order Summary for %s:\n\n", name)
	fmt.Fprintf(&b, "- %d scoop(s) of %s in a %s\n", in.Scoops, in.Flavor, in.Container)
	fmt.Fprintf(&b, "- Payment: %s\n", in.Payment)
	if in.Payment == models.PaymentCard {
		if in.CardNumber != "" {
			fmt.Fprintf(&b, "- Card Number: ****%s\n", lastFour(in.CardNumber))
		} else {
			b.WriteString("- Card Number: [Please enter card number]\n")
		}
	}
	fmt.Fprintf(&b, "- Delivery: %s\n", in.Delivery)
	fmt.Fprintf(&b, "- Total: Rs.%.2f\n", total)
	if in.Delivery == models.DeliveryDelivery {
		if addr := strings.TrimSpace(in.Address); addr != "" {
			fmt.Fprintf(&b, "- Delivery address: %s\n", addr)
		} else {
			b.WriteString("- Delivery address: [Please enter address]\n")
		}
	}
	return b.String()
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

// Total prices the current form state against the live menu.
func (in *Intake) Total(input models.OrderInput) float64 {
	return Price(input.Flavor, input.Scoops, input.Container, in.menu.PriceMap(), ContainerPrices)
}

// PlaceOrder validates the input and, on success, constructs the order
// and appends it to the log. The order id is a pseudo-random number in
// [1000, 9999] with no uniqueness check, a known limitation kept from
// the shop's original workflow. When the returned order is non-nil it
// has been recorded in memory even if the log file write failed; the
// error then tells the caller to warn the user.
func (in *Intake) PlaceOrder(input models.OrderInput) (*models.Order, error) {
	if err := ValidateInput(input); err != nil {
		return nil, err
	}

	total := in.Total(input)
	order := models.Order{
		ID:           in.rng.Intn(9000) + 1000,
		CustomerName: input.Name,
		Phone:        input.Phone,
		Flavor:       input.Flavor,
		Scoops:       input.Scoops,
		Container:    input.Container,
		Payment:      input.Payment,
		Delivery:     input.Delivery,
		Total:        total,
		Timestamp:    in.now().Format("2006-01-02 15:04:05"),
		Summary:      BuildSummary(input, total),
	}
	if input.Payment == models.PaymentCard {
		order.CardNumber = input.CardNumber
	}
	if input.Delivery == models.DeliveryDelivery {
		order.Address = strings.TrimSpace(input.Address)
	}

	if err := in.log.Append(order); err != nil {
		return &order, fmt.Errorf("save order to file: %w", err)
	}
	return &order, nil
}

// History returns all recorded orders, oldest first.
func (in *Intake) History() []models.Order {
	return in.log.History()
}
