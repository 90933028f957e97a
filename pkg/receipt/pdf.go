package receipt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/maligai/backoffice-api/internal/domain/entity"
)

// Renderer turns a persisted bill into a PDF receipt on disk. The file name
// is derived from the bill id, so re-rendering overwrites in place.
type Renderer struct {
	dir   string
	title string
}

// NewRenderer creates a renderer writing receipts under dir. The directory is
// created on first use if it does not exist.
func NewRenderer(dir, title string) *Renderer {
	if title == "" {
		title = "Receipt"
	}
	return &Renderer{dir: dir, title: title}
}

// FileName returns the deterministic receipt file name for a bill id
func FileName(billID string) string {
	return fmt.Sprintf("bill_%s.pdf", billID)
}

// Render writes the receipt PDF for the bill and returns the file name.
// The bill record stays authoritative; this artifact is regenerable.
func (r *Renderer) Render(bill *entity.Bill) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create receipt dir: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, r.title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	for i, item := range bill.Items {
		line := fmt.Sprintf("%d. %s - %d x %.2f = %.2f",
			i+1, item.Name, item.Qty,
			float64(item.UnitPrice)/100, float64(item.Subtotal)/100)
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Total: %.2f", bill.GetTotalDecimal()), "", 1, "R", false, 0, "")

	fileName := FileName(bill.ID.Hex())
	if err := pdf.OutputFileAndClose(filepath.Join(r.dir, fileName)); err != nil {
		return "", fmt.Errorf("failed to write receipt: %w", err)
	}

	return fileName, nil
}
