package receipts

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"upireceipts.in/app/internal/modules/payments"
)

const timestampLayout = "02 Jan 2006, 3:04 PM MST"

// Render produces the receipt PDF for a payment record. Output is
// deterministic: the same record always yields byte-identical bytes, so
// re-running the pipeline for a transaction overwrites the artifact with the
// exact same content.
func Render(rec *payments.Record) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")

	// A fixed creation date keeps the document metadata stable between runs.
	fixed := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	pdf.SetCreationDate(fixed)
	pdf.SetModificationDate(fixed)

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Donation Receipt", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	line := func(label, value string) {
		pdf.CellFormat(0, 8, fmt.Sprintf("%s: %s", label, value), "", 1, "L", false, 0, "")
	}

	// Core PDF fonts are cp1252, so the rupee sign is not representable.
	line("Name", orDefault(rec.Name, "Unknown"))
	line("Amount", "Rs. "+strconv.FormatFloat(rec.Amount, 'f', -1, 64))
	line("Message", orDefault(rec.Message, "No message"))
	line("UPI ID", orDefault(rec.UPIID, "Not available"))
	line("Transaction ID", orDefault(rec.TransactionID, "Not available"))
	line("Payment ID", orDefault(rec.RazorpayPaymentID, "Not available"))

	ts := "N/A"
	if !rec.UpdatedAt.IsZero() {
		ts = rec.UpdatedAt.Format(timestampLayout)
	}
	line("Date", ts)
	line("Received by", orDefault(rec.ToUser, "N/A"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
