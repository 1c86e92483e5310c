package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rpgo/finplan/internal/calculation"
	"github.com/rpgo/finplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func buildTestReport(t *testing.T) *domain.Report {
	t.Helper()
	cfg := &domain.Configuration{
		Name: "Fixture",
		Loans: []domain.LoanScenario{
			{
				Name:      "car",
				LoanTerms: domain.LoanTerms{Principal: 100000, AnnualRatePercent: 10, TenureMonths: 12},
				StartDate: date(2024, time.January, 31),
				AsOf:      date(2024, time.April, 30),
				Prepayment: &domain.PrepaymentPlan{
					Amount:      20000,
					Mode:        domain.ReduceTenure,
					AfterMonths: 3,
				},
			},
		},
		Retirement: []domain.RetirementScenario{
			{
				Name: "baseline",
				RetirementParams: domain.RetirementParams{
					CurrentAge:             30,
					RetirementAge:          35,
					AnnualReturnPercent:    8,
					AnnualInflationPercent: 3,
					CurrentPortfolio:       100000,
					MonthlyIncome:          10000,
					MonthlyExpenses:        4000,
				},
			},
		},
	}
	report, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func TestConsoleLiteFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "car: EMI=$8,791.59")
	assert.Contains(t, content, "Outstanding=")
	assert.Contains(t, content, "baseline: FIRE=$1,200,000.00")
	assert.Contains(t, content, "Recommended for car:")
}

func TestConsoleVerboseFormatter(t *testing.T) {
	out, err := ConsoleVerboseFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "DETAILED LOAN & RETIREMENT PLAN ANALYSIS")
	assert.Contains(t, content, "LOAN 1: car")
	assert.Contains(t, content, "2024-02-29")
	assert.Contains(t, content, "reduce_tenure (selected)")
	assert.Contains(t, content, "reduce_payment")
	assert.Contains(t, content, "RETIREMENT SCENARIO 1: baseline")
	assert.Contains(t, content, "SUMMARY & RECOMMENDATIONS")
}

func TestCSVSummarizerConfigurationOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestReport(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "header + one loan + one retirement row")
	assert.True(t, strings.HasPrefix(lines[1], "loan,car,100000.00,10.00,12,8791.59,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "retirement,baseline,"), lines[2])
	assert.Contains(t, lines[1], "reduce_tenure")
}

func TestCSVDetailedExporter(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestReport(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// header + 12 schedule months + 6 projection years (ages 30..35)
	require.Len(t, lines, 19)
	assert.Equal(t, "car,loan,1,2024-02-29,paid,8791.59,833.33,7958.26,92041.74,,", lines[1])
	assert.True(t, strings.HasPrefix(lines[4], "car,loan,4,2024-05-31,pending,"), lines[4])
	assert.True(t, strings.HasSuffix(lines[12], ",0.00,,"), "last remaining balance is zero: %s", lines[12])
	assert.True(t, strings.HasPrefix(lines[13], "baseline,retirement,30,"), lines[13])
}

func TestJSONFormatterRoundsFigures(t *testing.T) {
	report := buildTestReport(t)
	out, err := JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded struct {
		Loans []struct {
			Installment float64 `json:"installment"`
			Prepayment  struct {
				Mode string `json:"mode"`
			} `json:"prepayment"`
		} `json:"loans"`
		Retirement []struct {
			Points []json.RawMessage `json:"points"`
		} `json:"retirement"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Loans, 1)
	assert.Equal(t, 8791.59, decoded.Loans[0].Installment)
	assert.Equal(t, "reduce_tenure", decoded.Loans[0].Prepayment.Mode)
	assert.Len(t, decoded.Retirement[0].Points, 6)

	// rounding works on a copy
	assert.NotEqual(t, 8791.59, report.Loans[0].Installment)
	assert.InDelta(t, 8791.59, report.Loans[0].Installment, 0.005)
}

func TestHTMLFormatter(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestReport(t))
	require.NoError(t, err)
	content := string(out)
	assert.Contains(t, content, "Key Assumptions")
	assert.Contains(t, content, "$8,791.59")
	assert.Contains(t, content, "Prepayment Comparison")
	assert.Contains(t, content, "Retirement Projections")
	assert.Contains(t, content, "2024-02-29")
}

func TestHTMLFormatterUsesCurrencySymbol(t *testing.T) {
	report := buildTestReport(t)
	report.Currency = "€"
	out, err := HTMLFormatter{}.Format(report)
	require.NoError(t, err)
	assert.Contains(t, string(out), "€8,791.59")
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
	}

	report := buildTestReport(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(report)
		require.NoError(t, err, tc.name)

		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			require.NoError(t, os.WriteFile(goldenPath, []byte(firstLine(string(out))+"\n"), 0644))
		}
		data, err := os.ReadFile(goldenPath)
		require.NoError(t, err, tc.name)
		assert.True(t, strings.HasPrefix(string(out), strings.TrimSpace(string(data))),
			"%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func TestFormatterAliasResolution(t *testing.T) {
	tests := map[string]string{
		"console-verbose": "console",
		"Verbose":         "console",
		"csv-detailed":    "detailed-csv",
		" JSON ":          "json",
		"summary":         "console-lite",
	}
	for alias, want := range tests {
		f := GetFormatterByName(alias)
		require.NotNil(t, f, alias)
		assert.Equal(t, want, f.Name(), alias)
	}
	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableFormatterNames(t *testing.T) {
	assert.Equal(t, []string{"console", "console-lite", "csv", "detailed-csv", "html", "json"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "verbose")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, "csv", Extension("detailed-csv"))
	assert.Equal(t, "csv", Extension("csv-summary"))
	assert.Equal(t, "json", Extension("json"))
	assert.Equal(t, "html", Extension("html-report"))
	assert.Equal(t, "txt", Extension("console"))
	assert.Equal(t, "txt", Extension("console-lite"))
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := GenerateReport(&domain.Report{}, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "unsupported report format")
	assert.Contains(t, err.Error(), "Try one of:")
}

func TestGenerateReportWritesTimestampedFiles(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = orig })

	dir := t.TempDir()
	report := buildTestReport(t)

	files, err := GenerateReport(report, "json", dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "finplan_report_20250102_030405.json")}, files)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	files, err = GenerateReport(report, "all", dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "finplan_report_20250102_030405.txt"),
		filepath.Join(dir, "finplan_report_20250102_030405.csv"),
	}, files)
}

func TestFormatterFunc(t *testing.T) {
	f := FormatterFunc{ID: "names", F: func(r *domain.Report) ([]byte, error) { return []byte(r.Name), nil }}
	out, err := f.Format(&domain.Report{Name: "plan"})
	require.NoError(t, err)
	assert.Equal(t, "plan", string(out))
	assert.Equal(t, "names", f.Name())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "$1,234.57", FormatCurrency(1234.567, "$"))
	assert.Equal(t, "12.35%", FormatPercentage(12.3456))
	assert.Equal(t, "92041.74", FormatAmount(92041.7446))
	assert.Equal(t, "", optionalInt(nil))
	n := 7
	assert.Equal(t, "7", optionalInt(&n))
}
