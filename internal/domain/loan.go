package domain

import (
	"fmt"
	"strings"
	"time"
)

// LoanTerms describes a fixed-payment loan
type LoanTerms struct {
	Principal         float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent float64 `yaml:"annual_rate_percent" json:"annual_rate_percent"`
	TenureMonths      int     `yaml:"tenure_months" json:"tenure_months"`
}

// EMIScheduleEntry is one month of an amortization schedule
type EMIScheduleEntry struct {
	Month       int     `json:"month"`
	Installment float64 `json:"installment"`
	Interest    float64 `json:"interest"`
	Principal   float64 `json:"principal"`
	Remaining   float64 `json:"remaining"`
}

// PrepaymentMode selects how a lump-sum prepayment is applied to the remaining schedule
type PrepaymentMode int

const (
	// ReduceTenure keeps the installment and shortens the loan
	ReduceTenure PrepaymentMode = iota + 1
	// ReducePayment keeps the tenure and lowers the installment
	ReducePayment
)

var prepaymentModeNames = map[PrepaymentMode]string{
	ReduceTenure:  "reduce_tenure",
	ReducePayment: "reduce_payment",
}

// PrepaymentModes lists the supported modes in a stable order.
func PrepaymentModes() []PrepaymentMode {
	return []PrepaymentMode{ReduceTenure, ReducePayment}
}

func (m PrepaymentMode) String() string {
	if name, ok := prepaymentModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PrepaymentMode(%d)", int(m))
}

// Valid reports whether m is one of the declared modes
func (m PrepaymentMode) Valid() bool {
	_, ok := prepaymentModeNames[m]
	return ok
}

// ParsePrepaymentMode accepts the snake_case name, case-insensitively. Hyphens are
// accepted in place of underscores so CLI flags read naturally.
func ParsePrepaymentMode(s string) (PrepaymentMode, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for mode, name := range prepaymentModeNames {
		if name == n {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown prepayment mode %q: must be 'reduce_tenure' or 'reduce_payment'", s)
}

// MarshalText implements encoding.TextMarshaler (used by both JSON and YAML)
func (m PrepaymentMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("invalid prepayment mode %d", int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (m *PrepaymentMode) UnmarshalText(text []byte) error {
	mode, err := ParsePrepaymentMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// PrepaymentResult compares the remaining schedule before and after a prepayment
type PrepaymentResult struct {
	Mode                  PrepaymentMode `json:"mode"`
	Prepayment            float64        `json:"prepayment"`
	OriginalPrincipal     float64        `json:"original_principal"`
	OriginalInstallment   float64        `json:"original_installment"`
	OriginalTenureMonths  int            `json:"original_tenure_months"`
	OriginalTotalInterest float64        `json:"original_total_interest"`
	NewPrincipal          float64        `json:"new_principal"`
	NewInstallment        float64        `json:"new_installment"`
	NewTenureMonths       int            `json:"new_tenure_months"`
	TenureReductionMonths int            `json:"tenure_reduction_months"`
	// FinalInstallment is the last (possibly partial) payment under ReduceTenure
	FinalInstallment float64 `json:"final_installment"`
	NewTotalInterest float64 `json:"new_total_interest"`
	InterestSaved    float64 `json:"interest_saved"`
}

// InstallmentStatus is the payment state of a dated installment
type InstallmentStatus string

const (
	StatusPending InstallmentStatus = "pending"
	StatusPaid    InstallmentStatus = "paid"
)

// Installment is a schedule entry pinned to a calendar due date
type Installment struct {
	EMIScheduleEntry
	DueDate time.Time         `json:"due_date"`
	Status  InstallmentStatus `json:"status"`
}

// LoanProgress summarizes paid installments of a reconciled schedule
type LoanProgress struct {
	PaidInstallments  int     `json:"paid_installments"`
	TotalInstallments int     `json:"total_installments"`
	PrincipalPaid     float64 `json:"principal_paid"`
	InterestPaid      float64 `json:"interest_paid"`
	Outstanding       float64 `json:"outstanding"`
	CompletionPercent float64 `json:"completion_percent"`
}
