// Package export renders the evaluation and coaching collections as
// downloadable CSV and PDF documents. Both encoders take fully loaded
// slices; querying and filtering happen upstream.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/royalvending/go-coaching-backend/internal/domain"
	"github.com/royalvending/go-coaching-backend/internal/report"
)

// csvHeader is the one shared header row; evaluation and coaching rows
// are distinguished by the Type column.
var csvHeader = []string{"Type", "Team Member", "Evaluator/Coach", "Date", "Total/Notes"}

// WriteCSV writes the combined report: one header row, every evaluation,
// then every coaching log. Slice order is preserved so the file reads
// most-recently-added first like the dashboard tables.
func WriteCSV(w io.Writer, evals []domain.Evaluation, logs []domain.CoachingLog) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, e := range evals {
		rec := []string{
			"Evaluation",
			e.Member,
			e.Evaluator,
			e.Date,
			fmt.Sprintf("%.2f", report.TotalOf(e)),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	for _, l := range logs {
		rec := []string{
			"Coaching",
			l.Member,
			l.Coach,
			l.Date,
			l.Topics,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
