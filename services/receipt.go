package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"velvet-cone/models"
)

// ReceiptWriter renders one-page PDF receipts. A failed render is
// reported to the user; it never rolls back the already-recorded order.
type ReceiptWriter struct {
	ShopName string
	Currency string
	Dir      string
}

func NewReceiptWriter(shopName, currency, dir string) *ReceiptWriter {
	return &ReceiptWriter{ShopName: shopName, Currency: currency, Dir: dir}
}

// Write renders the receipt for an order and returns the path of the
// written file, "<order_id>_receipt.pdf" under the receipt directory.
func (w *ReceiptWriter) Write(o *models.Order) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)

	pdf.CellFormat(190, 10, w.ShopName, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.CellFormat(190, 10, fmt.Sprintf("Name: %s", asciiSafe(o.CustomerName)), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 10, fmt.Sprintf("Order ID: %d", o.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(190, 10, fmt.Sprintf("Time: %s", o.Timestamp), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 10, "Order Summary:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 10, asciiSafe(o.Summary), "", "L", false)
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 10, fmt.Sprintf("Grand Total: %s %.2f", w.Currency, o.Total), "", 1, "L", false, 0, "")

	path := filepath.Join(w.Dir, fmt.Sprintf("%d_receipt.pdf", o.ID))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write receipt %s: %w", path, err)
	}
	return path, nil
}

// asciiSafe replaces anything outside printable ASCII so the built-in
// PDF fonts never see a rune they cannot encode. Newlines pass through.
func asciiSafe(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' || (r >= 32 && r < 127) {
			out = append(out, r)
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}

// CopyReceipt copies an already-rendered receipt to dst, the
// "save a copy" action on the confirmation screen.
func CopyReceipt(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open receipt %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy receipt to %s: %w", dst, err)
	}
	return out.Close()
}
