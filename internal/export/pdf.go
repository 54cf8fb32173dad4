package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/report"
)

// WritePDF renders the evaluation report as a single-column A4 document:
// a title, the generation timestamp, then one line per evaluation in
// slice order. gofpdf handles page breaks automatically.
func WritePDF(w io.Writer, evals []domain.Evaluation, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Royal Vending Performance Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, "Generated "+generatedAt.UTC().Format("2006-01-02 15:04 UTC"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 11)
	if len(evals) == 0 {
		pdf.CellFormat(0, 8, "No evaluations recorded.", "", 1, "L", false, 0, "")
	}
	for _, e := range evals {
		line := fmt.Sprintf("%s  |  %s  |  evaluated by %s  |  total %.2f", e.Date, e.Member, e.Evaluator, report.TotalOf(e))
		pdf.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}
