package booking

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// ReceiptPDF renders the receipt for a paid request as a PDF and returns it
// base64 encoded along with a suggested filename.
func (s *Store) ReceiptPDF(requestID int) (string, string, error) {
	receipt, ok := s.Receipt(requestID)
	if !ok {
		return "", "", fmt.Errorf("receipt for request %d not found", requestID)
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(100, 92, "LocalServe - Payment Receipt")

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Receipt ID: %s", receipt.ReceiptID),
		fmt.Sprintf("Date: %s", receipt.Date),
		fmt.Sprintf("Customer: %s", receipt.CustomerName),
		fmt.Sprintf("Provider: %s", receipt.ProviderName),
		fmt.Sprintf("Service: %s", receipt.Service),
		fmt.Sprintf("Amount Paid: %d", receipt.Amount),
		fmt.Sprintf("Status: %s", receipt.Status),
	}
	y := 142.0
	for _, line := range lines {
		pdf.Text(100, y, line)
		y += 20
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", "", fmt.Errorf("failed to render receipt pdf: %w", err)
	}

	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())
	filename := fmt.Sprintf("receipt_%s.pdf", receipt.ReceiptID)
	return encoded, filename, nil
}
