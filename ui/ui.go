// Package ui is the terminal order form: a line-oriented event loop
// that collects fields, shows the live summary, and drives the menu
// and order services. Presentation only, no domain rules live here.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"velvet-cone/config"
	"velvet-cone/models"
	"velvet-cone/services"
	"velvet-cone/store"
)

type UI struct {
	in  *bufio.Reader
	out io.Writer

	cfg      *config.Config
	menu     *store.MenuStore
	intake   *services.Intake
	receipts *services.ReceiptWriter

	lastReceipt string // path of the most recent rendered receipt
}

func New(cfg *config.Config, menu *store.MenuStore, intake *services.Intake, receipts *services.ReceiptWriter, in io.Reader, out io.Writer) *UI {
	return &UI{
		in:       bufio.NewReader(in),
		out:      out,
		cfg:      cfg,
		menu:     menu,
		intake:   intake,
		receipts: receipts,
	}
}

// Run is the cooperative event loop: one action at a time until quit.
func (u *UI) Run() {
	fmt.Fprintf(u.out, "=== %s - Ice Cream Ordering System ===\n", u.cfg.Shop.Name)
	for {
		fmt.Fprintln(u.out)
		fmt.Fprintln(u.out, "Actions: order | menu | add | update | history | stats | receipt | quit")
		cmd, ok := u.prompt("> ")
		if !ok {
			return
		}
		switch strings.ToLower(strings.TrimSpace(cmd)) {
		case "order":
			u.placeOrder()
		case "menu":
			u.showMenu()
		case "add":
			u.addFlavor()
		case "update":
			u.updateFlavor()
		case "history":
			u.showHistory()
		case "stats":
			u.showStats()
		case "receipt":
			u.saveReceiptCopy()
		case "quit", "exit", "q":
			return
		case "":
		default:
			fmt.Fprintf(u.out, "Unknown action: %s\n", cmd)
		}
	}
}

func (u *UI) showError(err error) {
	fmt.Fprintf(u.out, "Error: %v\n", err)
}

// prompt reads one line; ok is false on end of input (treated as quit).
func (u *UI) prompt(label string) (string, bool) {
	fmt.Fprint(u.out, label)
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (u *UI) placeOrder() {
	input := models.OrderInput{
		Flavor:    u.menu.First(),
		Scoops:    1,
		Container: models.ContainerCup,
		Payment:   models.PaymentCash,
		Delivery:  models.DeliveryTakeaway,
	}

	name, ok := u.prompt("Name: ")
	if !ok {
		return
	}
	input.Name = strings.TrimSpace(name)

	phone, ok := u.prompt("Phone: ")
	if !ok {
		return
	}
	input.Phone = strings.TrimSpace(phone)

	u.showMenu()
	if flavor, ok := u.promptChoice("Flavor", u.menu.Flavors(), input.Flavor); ok {
		input.Flavor = flavor
	} else {
		return
	}

	scoopsStr, ok := u.prompt("Scoops (1-3) [1]: ")
	if !ok {
		return
	}
	if s := strings.TrimSpace(scoopsStr); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < services.MinScoops || n > services.MaxScoops {
			u.showError(fmt.Errorf("scoops must be a number from 1 to 3"))
			return
		}
		input.Scoops = n
	}

	if c, ok := u.promptChoice("Container", []string{models.ContainerCup, models.ContainerCone}, input.Container); ok {
		input.Container = c
	} else {
		return
	}

	p, ok := u.promptChoice("Payment", []string{models.PaymentCash, models.PaymentCard}, input.Payment)
	if !ok {
		return
	}
	input.Payment = p
	if input.Payment == models.PaymentCard {
		card, ok := u.prompt("Card Number: ")
		if !ok {
			return
		}
		input.CardNumber = strings.TrimSpace(card)
	}

	d, ok := u.promptChoice("Delivery", []string{models.DeliveryTakeaway, models.DeliveryDelivery}, input.Delivery)
	if !ok {
		return
	}
	input.Delivery = d
	if input.Delivery == models.DeliveryDelivery {
		addr, ok := u.prompt("Address: ")
		if !ok {
			return
		}
		input.Address = strings.TrimSpace(addr)
	}

	fmt.Fprintln(u.out)
	fmt.Fprint(u.out, services.BuildSummary(input, u.intake.Total(input)))

	confirm, ok := u.prompt("Place order? (y/n): ")
	if !ok || !strings.EqualFold(strings.TrimSpace(confirm), "y") {
		fmt.Fprintln(u.out, "Order discarded.")
		return
	}

	order, err := u.intake.PlaceOrder(input)
	if err != nil && order == nil {
		u.showError(err)
		return
	}
	if err != nil {
		// Order is recorded in memory; only the log file write failed.
		u.showError(err)
	}

	fmt.Fprintf(u.out, "Order #%d has been placed!\n", order.ID)

	path, err := u.receipts.Write(order)
	if err != nil {
		u.showError(err)
		return
	}
	u.lastReceipt = path
	fmt.Fprintf(u.out, "Receipt saved: %s\n", path)
}

func (u *UI) showMenu() {
	fmt.Fprintln(u.out, "Our Delicious Flavors:")
	for _, e := range u.menu.Entries() {
		fmt.Fprintf(u.out, "  %-25s %s%.2f\n", e.Flavor, u.cfg.Shop.Currency, e.Price)
	}
}

func (u *UI) addFlavor() {
	flavor, ok := u.prompt("Flavor Name: ")
	if !ok {
		return
	}
	flavor = strings.TrimSpace(flavor)
	priceStr, ok := u.prompt(fmt.Sprintf("Price (%s): ", u.cfg.Shop.Currency))
	if !ok {
		return
	}
	if flavor == "" || strings.TrimSpace(priceStr) == "" {
		u.showError(fmt.Errorf("please enter both flavor and price"))
		return
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(priceStr), 64)
	if err != nil {
		u.showError(fmt.Errorf("please enter a valid price"))
		return
	}
	if err := u.menu.Add(flavor, price); err != nil {
		u.showError(err)
		return
	}
	fmt.Fprintf(u.out, "Added %s for %s%.2f!\n", flavor, u.cfg.Shop.Currency, price)
}

func (u *UI) updateFlavor() {
	u.showMenu()
	old, ok := u.promptChoice("Flavor to update", u.menu.Flavors(), u.menu.First())
	if !ok {
		return
	}
	newName, ok := u.prompt("New Name (blank keeps current): ")
	if !ok {
		return
	}
	newPriceStr, ok := u.prompt("New Price (blank keeps current): ")
	if !ok {
		return
	}

	var newPrice *float64
	if s := strings.TrimSpace(newPriceStr); s != "" {
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			u.showError(fmt.Errorf("please enter a valid price"))
			return
		}
		newPrice = &p
	}
	if err := u.menu.Update(old, strings.TrimSpace(newName), newPrice); err != nil {
		u.showError(err)
		return
	}
	fmt.Fprintln(u.out, "Flavor updated.")
}

func (u *UI) showHistory() {
	history := u.intake.History()
	if len(history) == 0 {
		fmt.Fprintln(u.out, "No orders yet.")
		return
	}
	fmt.Fprintln(u.out, "Order History (most recent first):")
	for i := len(history) - 1; i >= 0; i-- {
		o := history[i]
		fmt.Fprintf(u.out, "  #%d  %s  %s  %d scoop(s) of %s  %s%.2f\n",
			o.ID, o.Timestamp, o.CustomerName, o.Scoops, o.Flavor, u.cfg.Shop.Currency, o.Total)
	}
}

func (u *UI) showStats() {
	day := time.Now().Format("2006-01-02")
	s := services.StatsForDay(u.intake.History(), day)
	fmt.Fprintf(u.out, "Today (%s): %d order(s), %s%.2f revenue\n",
		day, s.OrdersCount, u.cfg.Shop.Currency, s.Revenue)
}

func (u *UI) saveReceiptCopy() {
	if u.lastReceipt == "" {
		u.showError(fmt.Errorf("no receipt yet; place an order first"))
		return
	}
	dst, ok := u.prompt(fmt.Sprintf("Save copy of %s as: ", u.lastReceipt))
	if !ok {
		return
	}
	dst = strings.TrimSpace(dst)
	if dst == "" {
		fmt.Fprintln(u.out, "Cancelled.")
		return
	}
	if err := services.CopyReceipt(u.lastReceipt, dst); err != nil {
		u.showError(err)
		return
	}
	fmt.Fprintf(u.out, "Receipt saved to: %s\n", dst)
}

// promptChoice asks until the answer matches one of options (blank
// keeps def). Matching ignores case.
func (u *UI) promptChoice(label string, options []string, def string) (string, bool) {
	for {
		ans, ok := u.prompt(fmt.Sprintf("%s (%s) [%s]: ", label, strings.Join(options, "/"), def))
		if !ok {
			return "", false
		}
		ans = strings.TrimSpace(ans)
		if ans == "" {
			return def, true
		}
		for _, opt := range options {
			if strings.EqualFold(ans, opt) {
				return opt, true
			}
		}
		fmt.Fprintf(u.out, "Please choose one of: %s\n", strings.Join(options, ", "))
	}
}
