package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"
	"time"

	"github.com/rpgo/finplan/internal/domain"
	"github.com/rpgo/finplan/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML report with a portfolio chart per retirement scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct":  FormatPercentage,
	"date": func(t time.Time) string { return t.Format(dateutil.DateLayout) },
	"deref": func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return *p
	},
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	sym := symbolFor(report)

	type series struct {
		Name      string    `json:"name"`
		Ages      []int     `json:"ages"`
		Portfolio []float64 `json:"portfolio"`
		Target    []float64 `json:"target"`
	}
	charts := make([]series, 0, len(report.Retirement))
	for _, r := range roundReport(report).Retirement {
		s := series{Name: r.Name}
		for _, p := range r.Points {
			s.Ages = append(s.Ages, p.Age)
			s.Portfolio = append(s.Portfolio, p.PortfolioValue)
			s.Target = append(s.Target, p.FIRENumber)
		}
		charts = append(charts, s)
	}

	data := struct {
		*domain.Report
		Assumptions []string
		Charts      []series
		Curr        func(float64) string
	}{
		Report:      report,
		Assumptions: assumptionsFor(report),
		Charts:      charts,
		Curr:        func(v float64) string { return FormatCurrency(v, sym) },
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
