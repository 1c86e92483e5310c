package output

import (
	"encoding/json"

	"github.com/rpgo/finplan/internal/domain"
)

// JSONFormatter serializes the report as pretty-printed JSON, figures rounded to cents.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.Report) ([]byte, error) {
	return json.MarshalIndent(roundReport(report), "", "  ")
}
