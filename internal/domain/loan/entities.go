package loan

// Risk levels for the overall assessment and per-factor entries.
type RiskLevel string

const (
	RiskLow         RiskLevel = "low"
	RiskLowModerate RiskLevel = "low_moderate"
	RiskModerate    RiskLevel = "moderate"
	RiskHigh        RiskLevel = "high"
)

type Impact string

const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
)

// DTI categories, ascending severity. Thresholds are half-open on the
// upper bound (28, 36, 43, 50).
const (
	DTIExcellent = "excellent"
	DTIGood      = "good"
	DTIFair      = "fair"
	DTIPoor      = "poor"
	DTICritical  = "critical"
)

// Credit score categories (>=740, >=670, >=580, below).
const (
	CreditExcellent = "excellent"
	CreditGood      = "good"
	CreditFair      = "fair"
	CreditPoor      = "poor"
)

// SummaryRow is the payment_number sentinel carried by the trailing
// totals row of a schedule.
const SummaryRow = "summary"

// Request holds the parameters of a single loan scenario. Dollar amounts
// are annual unless the field says otherwise; interest_rate is an annual
// percentage. Validation runs before any computation does.
type Request struct {
	Income        float64  `json:"income" validate:"required,gt=0"`
	LoanAmount    float64  `json:"loan_amount" validate:"required,gt=0"`
	LoanTerm      int      `json:"loan_term" validate:"required,gte=1,lte=50"`
	InterestRate  float64  `json:"interest_rate" validate:"gte=0,lte=30"`
	CreditScore   int      `json:"credit_score" validate:"required,gte=300,lte=850"`
	MonthlyDebt   float64  `json:"monthly_debt" validate:"gte=0"`
	PropertyValue *float64 `json:"property_value" validate:"omitempty,gt=0"`
	ExtraPayment  float64  `json:"extra_payment" validate:"gte=0"`
}

// PaymentEntry is one schedule row. PaymentNumber is an int for simulated
// and synthesized rows, or the SummaryRow sentinel for the totals row.
// The payoff fields are populated on the summary row only.
type PaymentEntry struct {
	PaymentNumber     any      `json:"payment_number"`
	PaymentDate       string   `json:"payment_date,omitempty"`
	PaymentAmount     float64  `json:"payment_amount"`
	PrincipalPayment  float64  `json:"principal_payment"`
	InterestPayment   float64  `json:"interest_payment"`
	RemainingBalance  float64  `json:"remaining_balance"`
	TotalInterestPaid float64  `json:"total_interest_paid"`
	YearsToPayoff     *float64 `json:"years_to_payoff,omitempty"`
	MonthsToPayoff    *int     `json:"months_to_payoff,omitempty"`
}

type DebtToIncome struct {
	BeforeLoan float64 `json:"before_loan"`
	AfterLoan  float64 `json:"after_loan"`
	Category   string  `json:"category"`
}

type CreditScore struct {
	Value    int    `json:"value"`
	Category string `json:"category"`
}

// AnalysisResult carries the affordability metrics, all ratios rounded to
// two decimals. LoanToValue is nil when no property value was supplied;
// absence is meaningful and must not collapse to zero.
type AnalysisResult struct {
	MonthlyPayment           float64      `json:"monthly_payment"`
	TotalInterest            float64      `json:"total_interest"`
	TotalPayments            float64      `json:"total_payments"`
	DebtToIncome             DebtToIncome `json:"debt_to_income"`
	LoanToIncome             float64      `json:"loan_to_income"`
	PaymentToIncome          float64      `json:"payment_to_income"`
	LoanToValue              *float64     `json:"loan_to_value,omitempty"`
	CreditScore              CreditScore  `json:"credit_score"`
	DebtServiceCoverageRatio float64      `json:"debt_service_coverage_ratio"`
}

type RiskFactor struct {
	RiskLevel  RiskLevel `json:"risk_level"`
	Impact     Impact    `json:"impact"`
	Suggestion string    `json:"suggestion"`
}

type RiskAssessment struct {
	RiskFactors     map[string]RiskFactor `json:"risk_factors"`
	OverallRisk     RiskLevel             `json:"overall_risk"`
	Recommendations []string              `json:"recommendations"`
}

// Report is the full analysis response: metrics, risk, the truncated
// schedule, and the HTML narrative.
type Report struct {
	Analysis               AnalysisResult `json:"analysis"`
	Risk                   RiskAssessment `json:"risk"`
	ScheduleSummary        []PaymentEntry `json:"schedule_summary"`
	VisualizationAvailable bool           `json:"visualization_available"`
	Recommendations        string         `json:"recommendations"`
}
