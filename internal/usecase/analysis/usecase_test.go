package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"loan-guidance-api/internal/domain/loan"
	"loan-guidance-api/pkg/htmltext"
)

// 325k over 30 years at 6.5% with 85k income — the stock scenario used
// throughout these tests.
func baseRequest() loan.Request {
	return loan.Request{
		Income:       85000,
		LoanAmount:   325000,
		LoanTerm:     30,
		InterestRate: 6.5,
		CreditScore:  720,
		MonthlyDebt:  1200,
	}
}

func ptr(v float64) *float64 { return &v }

func TestAnalyze_ReferenceScenario(t *testing.T) {
	uc := NewUsecase(false)
	rep, err := uc.Analyze(baseRequest())
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}

	a := rep.Analysis
	if math.Abs(a.MonthlyPayment-2054.22) > 0.01 {
		t.Fatalf("monthly payment = %.2f, want ~2054.22", a.MonthlyPayment)
	}
	// total_payments = total_interest + principal within rounding
	if diff := math.Abs(a.TotalPayments - (a.TotalInterest + 325000)); diff > 0.011 {
		t.Fatalf("totals inconsistent by %.4f", diff)
	}
	if math.Abs(a.DebtToIncome.BeforeLoan-16.94) > 0.01 {
		t.Fatalf("dti before = %.2f", a.DebtToIncome.BeforeLoan)
	}
	if math.Abs(a.DebtToIncome.AfterLoan-45.94) > 0.02 {
		t.Fatalf("dti after = %.2f", a.DebtToIncome.AfterLoan)
	}
	if a.DebtToIncome.Category != loan.DTIPoor {
		t.Fatalf("dti category = %s, want poor", a.DebtToIncome.Category)
	}
	if math.Abs(a.LoanToIncome-382.35) > 0.01 {
		t.Fatalf("loan_to_income = %.2f", a.LoanToIncome)
	}
	if a.LoanToValue != nil {
		t.Fatalf("loan_to_value should be absent without a property value, got %v", *a.LoanToValue)
	}
	if a.CreditScore.Value != 720 || a.CreditScore.Category != loan.CreditGood {
		t.Fatalf("credit = %+v", a.CreditScore)
	}
	if math.Abs(a.DebtServiceCoverageRatio-2.18) > 0.01 {
		t.Fatalf("dscr = %.2f", a.DebtServiceCoverageRatio)
	}

	// dti_after > 43 with a 720 score → overall high
	if rep.Risk.OverallRisk != loan.RiskHigh {
		t.Fatalf("overall risk = %s", rep.Risk.OverallRisk)
	}
	recs := rep.Risk.Recommendations
	if len(recs) != 2 {
		t.Fatalf("recommendations = %v", recs)
	}
	if !strings.Contains(recs[0], "debt-to-income ratio is high") {
		t.Fatalf("first rec = %q", recs[0])
	}
	if !strings.Contains(recs[1], "extra payments") {
		t.Fatalf("second rec = %q", recs[1])
	}
	for _, r := range recs {
		if strings.Contains(r, "down payment") {
			t.Fatalf("LTV advice must not fire without a property value: %q", r)
		}
	}

	if rep.VisualizationAvailable {
		t.Fatal("visualization_available must be false")
	}
}

func TestAnalyze_ZeroInterestRate(t *testing.T) {
	uc := NewUsecase(false)
	rep, err := uc.Analyze(loan.Request{
		Income:      60000,
		LoanAmount:  12000,
		LoanTerm:    1,
		CreditScore: 760,
	})
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if rep.Analysis.MonthlyPayment != 1000 {
		t.Fatalf("monthly payment = %v, want exactly 1000", rep.Analysis.MonthlyPayment)
	}
	if rep.Analysis.TotalInterest != 0 {
		t.Fatalf("total interest = %v, want 0", rep.Analysis.TotalInterest)
	}
	if rep.Risk.OverallRisk != loan.RiskLow {
		t.Fatalf("overall risk = %s, want low", rep.Risk.OverallRisk)
	}
}

func TestAnalyze_LoanToValue(t *testing.T) {
	uc := NewUsecase(false)

	req := baseRequest()
	req.PropertyValue = ptr(400000)
	rep, err := uc.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if rep.Analysis.LoanToValue == nil || *rep.Analysis.LoanToValue != 81.25 {
		t.Fatalf("ltv = %v, want 81.25", rep.Analysis.LoanToValue)
	}
	if !containsSubstring(rep.Risk.Recommendations, "down payment") {
		t.Fatalf("LTV>80 must add the down-payment advice: %v", rep.Risk.Recommendations)
	}

	req.PropertyValue = ptr(700000)
	rep, err = uc.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if containsSubstring(rep.Risk.Recommendations, "down payment") {
		t.Fatalf("LTV<=80 must not add the down-payment advice: %v", rep.Risk.Recommendations)
	}
}

func TestAnalyze_ScheduleTruncation(t *testing.T) {
	uc := NewUsecase(false)
	rep, err := uc.Analyze(baseRequest())
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	s := rep.ScheduleSummary
	if len(s) != 4 {
		t.Fatalf("schedule summary rows = %d, want 4", len(s))
	}
	for i := 0; i < 3; i++ {
		if n, ok := s[i].PaymentNumber.(int); !ok || n != i+1 {
			t.Fatalf("row %d payment_number = %v", i, s[i].PaymentNumber)
		}
	}
	if s[3].PaymentNumber != loan.SummaryRow {
		t.Fatalf("last row = %v, want summary sentinel", s[3].PaymentNumber)
	}
}

func TestAnalyze_ShortLoanSummaryClosesSchedule(t *testing.T) {
	uc := NewUsecase(false)
	rep, err := uc.Analyze(loan.Request{
		Income:       100000,
		LoanAmount:   30000,
		LoanTerm:     1,
		InterestRate: 5,
		CreditScore:  750,
	})
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	// a one-year loan still generates 13 rows, so truncation applies and
	// the summary row must survive as the last entry
	if len(rep.ScheduleSummary) != 4 {
		t.Fatalf("rows = %d, want 4", len(rep.ScheduleSummary))
	}
	if got := rep.ScheduleSummary[3].PaymentNumber; got != loan.SummaryRow {
		t.Fatalf("last row = %v", got)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	uc := NewUsecase(false)
	req := baseRequest()
	req.PropertyValue = ptr(400000)

	first, err := uc.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	second, err := uc.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}

	b1, _ := json.Marshal(first)
	b2, _ := json.Marshal(second)
	if !bytes.Equal(b1, b2) {
		t.Fatal("identical input must produce byte-identical output")
	}
}

func TestRecommendations_MatchesFullAnalysis(t *testing.T) {
	uc := NewUsecase(false)
	req := baseRequest()

	recs, err := uc.Recommendations(req)
	if err != nil {
		t.Fatalf("Recommendations err: %v", err)
	}
	rep, err := uc.Analyze(req)
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	if len(recs) != len(rep.Risk.Recommendations) {
		t.Fatalf("accessor diverged: %v vs %v", recs, rep.Risk.Recommendations)
	}
	for i := range recs {
		if recs[i] != rep.Risk.Recommendations[i] {
			t.Fatalf("accessor diverged at %d", i)
		}
	}
}

func TestAnalyze_AffirmationFallback(t *testing.T) {
	uc := NewUsecase(false)
	rep, err := uc.Analyze(loan.Request{
		Income:        200000,
		LoanAmount:    100000,
		LoanTerm:      15,
		InterestRate:  4,
		CreditScore:   800,
		PropertyValue: ptr(500000),
		ExtraPayment:  100,
	})
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	recs := rep.Risk.Recommendations
	if len(recs) != 1 || !strings.Contains(recs[0], "appears strong") {
		t.Fatalf("want the single affirmation, got %v", recs)
	}
}

func TestAnalyze_NarrativeAndSanitizer(t *testing.T) {
	uc := NewUsecase(false)
	rep, err := uc.Analyze(baseRequest())
	if err != nil {
		t.Fatalf("Analyze err: %v", err)
	}
	n := rep.Recommendations
	for _, want := range []string{"<h3>Loan Assessment</h3>", "<h3>Recommendations</h3>", "<h3>Long-term Outlook</h3>", "<li>"} {
		if !strings.Contains(n, want) {
			t.Fatalf("narrative missing %q:\n%s", want, n)
		}
	}
	if !strings.Contains(n, "high risk") {
		t.Fatalf("narrative should spell out the risk level: %s", n)
	}
	if !strings.Contains(n, "$2,054.2") {
		t.Fatalf("narrative should carry the grouped payment amount: %s", n)
	}

	plain := htmltext.Sanitize(n)
	if !strings.Contains(plain, "** Loan Assessment **") {
		t.Fatalf("sanitized narrative missing heading marker:\n%s", plain)
	}
	if strings.ContainsRune(plain, '<') {
		t.Fatalf("sanitized narrative still has tags:\n%s", plain)
	}
}

func TestAnalyze_RejectsOutOfRangeBackstop(t *testing.T) {
	uc := NewUsecase(false)
	if _, err := uc.Analyze(loan.Request{Income: 0, LoanAmount: 1000, LoanTerm: 5}); err == nil {
		t.Fatal("zero income must error")
	}
}

func TestVisualization_Placeholder(t *testing.T) {
	uc := NewUsecase(false)
	v := uc.Visualization(baseRequest())
	if v == "" {
		t.Fatal("empty payload")
	}
	if got := uc.EnhancedVisualization(baseRequest()); got != v {
		t.Fatal("enhanced visualization must match the placeholder contract")
	}
}

func containsSubstring(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
