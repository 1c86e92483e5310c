package domain

// LoanSummary is the evaluated form of a LoanScenario
type LoanSummary struct {
	Name          string             `json:"name"`
	Terms         LoanTerms          `json:"terms"`
	Installment   float64            `json:"installment"`
	TotalInterest float64            `json:"total_interest"`
	TotalPayment  float64            `json:"total_payment"`
	Schedule      []EMIScheduleEntry `json:"schedule"`

	// Populated only when the scenario has a start date
	Installments []Installment `json:"installments,omitempty"`
	Progress     *LoanProgress `json:"progress,omitempty"`

	// Populated only when the scenario has an as-of date
	ElapsedMonths        int      `json:"elapsed_months,omitempty"`
	OutstandingPrincipal *float64 `json:"outstanding_principal,omitempty"`

	Prepayment *PrepaymentResult `json:"prepayment,omitempty"`
	// PrepaymentAlternatives holds the same prepayment evaluated under every mode
	PrepaymentAlternatives []PrepaymentResult `json:"prepayment_alternatives,omitempty"`
}

// RetirementSummary is the evaluated form of a RetirementScenario
type RetirementSummary struct {
	Name   string            `json:"name"`
	Result ProjectionResult  `json:"result"`
	Points []ProjectionPoint `json:"points"`
}

// PrepaymentRecommendation names the better prepayment mode for one loan
type PrepaymentRecommendation struct {
	LoanName      string         `json:"loan_name"`
	Mode          PrepaymentMode `json:"mode"`
	InterestSaved float64        `json:"interest_saved"`
	// Advantage is the extra interest saved over the other mode
	Advantage float64 `json:"advantage"`
}

// Analysis collects cross-scenario conclusions
type Analysis struct {
	Prepayments        []PrepaymentRecommendation `json:"prepayments"`
	EarliestFIScenario string                     `json:"earliest_fi_scenario"`
	EarliestFIAge      *int                       `json:"earliest_fi_age"`
	LoanTotalInterest  float64                    `json:"loan_total_interest"`
	KeyConsiderations  []string                   `json:"key_considerations"`
}

// Report is the complete result of running a Configuration
type Report struct {
	Name        string              `json:"name"`
	Currency    string              `json:"currency"`
	Loans       []LoanSummary       `json:"loans"`
	Retirement  []RetirementSummary `json:"retirement"`
	Analysis    Analysis            `json:"analysis"`
	Assumptions []string            `json:"assumptions"`
}
