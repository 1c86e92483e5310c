package output

import "github.com/rpgo/finplan/internal/domain"

// roundReport returns a copy of report with every currency and percentage
// figure rounded to 2 places. Inputs (terms, params) are left as given.
func roundReport(report *domain.Report) *domain.Report {
	out := *report

	out.Loans = make([]domain.LoanSummary, len(report.Loans))
	for i, l := range report.Loans {
		out.Loans[i] = roundLoan(l)
	}

	out.Retirement = make([]domain.RetirementSummary, len(report.Retirement))
	for i, r := range report.Retirement {
		out.Retirement[i] = roundRetirement(r)
	}

	a := report.Analysis
	a.LoanTotalInterest = round2(a.LoanTotalInterest)
	a.Prepayments = make([]domain.PrepaymentRecommendation, len(report.Analysis.Prepayments))
	for i, p := range report.Analysis.Prepayments {
		p.InterestSaved = round2(p.InterestSaved)
		p.Advantage = round2(p.Advantage)
		a.Prepayments[i] = p
	}
	out.Analysis = a
	return &out
}

func roundEntry(e domain.EMIScheduleEntry) domain.EMIScheduleEntry {
	e.Installment = round2(e.Installment)
	e.Interest = round2(e.Interest)
	e.Principal = round2(e.Principal)
	e.Remaining = round2(e.Remaining)
	return e
}

func roundLoan(l domain.LoanSummary) domain.LoanSummary {
	l.Installment = round2(l.Installment)
	l.TotalInterest = round2(l.TotalInterest)
	l.TotalPayment = round2(l.TotalPayment)

	schedule := make([]domain.EMIScheduleEntry, len(l.Schedule))
	for i, e := range l.Schedule {
		schedule[i] = roundEntry(e)
	}
	l.Schedule = schedule

	if l.Installments != nil {
		inst := make([]domain.Installment, len(l.Installments))
		for i, in := range l.Installments {
			in.EMIScheduleEntry = roundEntry(in.EMIScheduleEntry)
			inst[i] = in
		}
		l.Installments = inst
	}

	if l.Progress != nil {
		p := *l.Progress
		p.PrincipalPaid = round2(p.PrincipalPaid)
		p.InterestPaid = round2(p.InterestPaid)
		p.Outstanding = round2(p.Outstanding)
		p.CompletionPercent = round2(p.CompletionPercent)
		l.Progress = &p
	}

	if l.OutstandingPrincipal != nil {
		v := round2(*l.OutstandingPrincipal)
		l.OutstandingPrincipal = &v
	}

	if l.Prepayment != nil {
		p := roundPrepayment(*l.Prepayment)
		l.Prepayment = &p
	}
	if l.PrepaymentAlternatives != nil {
		alts := make([]domain.PrepaymentResult, len(l.PrepaymentAlternatives))
		for i, p := range l.PrepaymentAlternatives {
			alts[i] = roundPrepayment(p)
		}
		l.PrepaymentAlternatives = alts
	}
	return l
}

func roundPrepayment(p domain.PrepaymentResult) domain.PrepaymentResult {
	p.Prepayment = round2(p.Prepayment)
	p.OriginalPrincipal = round2(p.OriginalPrincipal)
	p.OriginalInstallment = round2(p.OriginalInstallment)
	p.OriginalTotalInterest = round2(p.OriginalTotalInterest)
	p.NewPrincipal = round2(p.NewPrincipal)
	p.NewInstallment = round2(p.NewInstallment)
	p.FinalInstallment = round2(p.FinalInstallment)
	p.NewTotalInterest = round2(p.NewTotalInterest)
	p.InterestSaved = round2(p.InterestSaved)
	return p
}

func roundRetirement(r domain.RetirementSummary) domain.RetirementSummary {
	res := r.Result
	res.FIRENumber = round2(res.FIRENumber)
	res.PortfolioAtRetirement = round2(res.PortfolioAtRetirement)
	res.FIRENumberAtRetirement = round2(res.FIRENumberAtRetirement)
	r.Result = res

	points := make([]domain.ProjectionPoint, len(r.Points))
	for i, p := range r.Points {
		p.PortfolioValue = round2(p.PortfolioValue)
		p.FIRENumber = round2(p.FIRENumber)
		points[i] = p
	}
	r.Points = points
	return r
}
