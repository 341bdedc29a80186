package analysis

import (
	"errors"
	"math"

	"loan-guidance-api/internal/domain/loan"
)

// ErrInvalidInput is the backstop for parameters that slipped past the
// transport-level validator. The math below assumes positive income,
// positive principal and at least one year of term.
var ErrInvalidInput = errors.New("loan parameters out of range")

// Usecase computes amortization schedules and affordability metrics for a
// single loan scenario. It holds no state between calls; every invocation
// is a pure function of its input, so concurrent use needs no locking.
type Usecase struct {
	aiEnabled bool
}

// NewUsecase builds the calculator. aiEnabled records whether an
// assistant key was configured at startup; no reachable path calls out to
// a model, recommendations stay rule based.
func NewUsecase(aiEnabled bool) *Usecase { return &Usecase{aiEnabled: aiEnabled} }

// AIEnabled reports the flag handed to the constructor.
func (u *Usecase) AIEnabled() bool { return u.aiEnabled }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

// monthlyPayment solves the fixed-rate annuity formula, falling back to a
// straight principal split when the monthly rate is zero.
func monthlyPayment(amount, monthlyRate float64, nPayments int) float64 {
	if monthlyRate == 0 {
		return amount / float64(nPayments)
	}
	pow := math.Pow(1+monthlyRate, float64(nPayments))
	return amount * (monthlyRate * pow) / (pow - 1)
}

// Analyze produces the full report for one scenario: payment and interest
// totals, affordability ratios with their categories, the per-factor risk
// assessment, rule-based recommendations, the truncated schedule and the
// HTML narrative.
func (u *Usecase) Analyze(in loan.Request) (*loan.Report, error) {
	if in.Income <= 0 || in.LoanAmount <= 0 || in.LoanTerm < 1 {
		return nil, ErrInvalidInput
	}

	monthlyRate := in.InterestRate / 100 / 12
	nPayments := in.LoanTerm * 12

	payment := monthlyPayment(in.LoanAmount, monthlyRate, nPayments)
	totalPayments := payment * float64(nPayments)
	totalInterest := totalPayments - in.LoanAmount

	monthlyIncome := in.Income / 12
	dtiBefore := in.MonthlyDebt / monthlyIncome * 100
	dtiAfter := (in.MonthlyDebt + payment) / monthlyIncome * 100

	loanToIncome := in.LoanAmount / in.Income * 100
	paymentToIncome := payment / monthlyIncome * 100

	// LTV stays unrounded for the >80 recommendation check; only the
	// reported value is rounded.
	var ltv float64
	var ltvOut *float64
	hasLTV := in.PropertyValue != nil
	if hasLTV {
		ltv = in.LoanAmount / *in.PropertyValue * 100
		rounded := round2(ltv)
		ltvOut = &rounded
	}

	dscr := monthlyIncome / (in.MonthlyDebt + payment)

	overall := overallRisk(dtiAfter, in.CreditScore)
	category := dtiCategory(dtiAfter)
	recs := recommendations(in, dtiAfter, ltv, hasLTV)

	return &loan.Report{
		Analysis: loan.AnalysisResult{
			MonthlyPayment: round2(payment),
			TotalInterest:  round2(totalInterest),
			TotalPayments:  round2(totalPayments),
			DebtToIncome: loan.DebtToIncome{
				BeforeLoan: round2(dtiBefore),
				AfterLoan:  round2(dtiAfter),
				Category:   category,
			},
			LoanToIncome:    round2(loanToIncome),
			PaymentToIncome: round2(paymentToIncome),
			LoanToValue:     ltvOut,
			CreditScore: loan.CreditScore{
				Value:    in.CreditScore,
				Category: creditCategory(in.CreditScore),
			},
			DebtServiceCoverageRatio: round2(dscr),
		},
		Risk: loan.RiskAssessment{
			RiskFactors:     riskFactors(in.CreditScore, dtiAfter),
			OverallRisk:     overall,
			Recommendations: recs,
		},
		ScheduleSummary:        truncateSchedule(generateSchedule(in)),
		VisualizationAvailable: false,
		Recommendations:        narrative(overall, category, dtiAfter, payment, totalInterest, recs, in),
	}, nil
}

// PaymentSchedule returns the full generated schedule: up to twelve
// simulated rows, the synthesized final payoff row for long loans, and
// the trailing summary row.
func (u *Usecase) PaymentSchedule(in loan.Request) ([]loan.PaymentEntry, error) {
	if in.LoanAmount <= 0 || in.LoanTerm < 1 {
		return nil, ErrInvalidInput
	}
	return generateSchedule(in), nil
}

// Recommendations re-runs the full analysis and extracts the ordered
// recommendation list. There is no separate computation path, so the list
// always matches what Analyze reports.
func (u *Usecase) Recommendations(in loan.Request) ([]string, error) {
	rep, err := u.Analyze(in)
	if err != nil {
		return nil, err
	}
	return rep.Risk.Recommendations, nil
}

// placeholderPNG is a 1x1 transparent pixel; real chart rendering never
// shipped, the visualization contract is an opaque base64 payload.
const placeholderPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z/C/HgAGgwJ/lK3Q6wAAAABJRU5ErkJggg=="

// Visualization returns the placeholder image payload.
func (u *Usecase) Visualization(loan.Request) string { return placeholderPNG }

// EnhancedVisualization matches the Visualization contract.
func (u *Usecase) EnhancedVisualization(in loan.Request) string { return u.Visualization(in) }

// truncateSchedule keeps the first three simulated rows plus the last row
// when the generated schedule exceeds four rows; shorter schedules pass
// through unmodified.
func truncateSchedule(s []loan.PaymentEntry) []loan.PaymentEntry {
	if len(s) <= 4 {
		return s
	}
	out := make([]loan.PaymentEntry, 0, 4)
	out = append(out, s[:3]...)
	out = append(out, s[len(s)-1])
	return out
}
