package analysis

import "loan-guidance-api/internal/domain/loan"

// Threshold tables follow standard underwriting guidance: DTI bands at
// 28/36/43/50 percent, credit bands at 580/670/740.

func dtiCategory(dtiAfter float64) string {
	switch {
	case dtiAfter < 28:
		return loan.DTIExcellent
	case dtiAfter < 36:
		return loan.DTIGood
	case dtiAfter < 43:
		return loan.DTIFair
	case dtiAfter < 50:
		return loan.DTIPoor
	default:
		return loan.DTICritical
	}
}

func creditCategory(score int) string {
	switch {
	case score >= 740:
		return loan.CreditExcellent
	case score >= 670:
		return loan.CreditGood
	case score >= 580:
		return loan.CreditFair
	default:
		return loan.CreditPoor
	}
}

func overallRisk(dtiAfter float64, creditScore int) loan.RiskLevel {
	switch {
	case dtiAfter > 43 || creditScore < 580:
		return loan.RiskHigh
	case dtiAfter > 36 || creditScore < 670:
		return loan.RiskModerate
	case dtiAfter > 28 || creditScore < 740:
		return loan.RiskLowModerate
	default:
		return loan.RiskLow
	}
}

// riskFactors scores the two tracked factors independently of the overall
// rating.
func riskFactors(creditScore int, dtiAfter float64) map[string]loan.RiskFactor {
	credit := loan.RiskFactor{
		RiskLevel:  loan.RiskLow,
		Impact:     loan.ImpactPositive,
		Suggestion: "Maintain excellent credit",
	}
	switch {
	case creditScore < 580:
		credit.RiskLevel = loan.RiskHigh
	case creditScore < 670:
		credit.RiskLevel = loan.RiskModerate
	}
	if creditScore < 670 {
		credit.Impact = loan.ImpactNegative
		credit.Suggestion = "Improve credit score"
	}

	dti := loan.RiskFactor{
		RiskLevel:  loan.RiskLow,
		Impact:     loan.ImpactPositive,
		Suggestion: "Maintain healthy DTI ratio",
	}
	switch {
	case dtiAfter > 43:
		dti.RiskLevel = loan.RiskHigh
	case dtiAfter > 36:
		dti.RiskLevel = loan.RiskModerate
	}
	if dtiAfter > 36 {
		dti.Impact = loan.ImpactNegative
		dti.Suggestion = "Reduce debt or increase income"
	}

	return map[string]loan.RiskFactor{
		"credit_score":   credit,
		"debt_to_income": dti,
	}
}

// recommendations appends each fired rule in order; any subset may fire.
// The affirmation fallback keeps the list non-empty.
func recommendations(in loan.Request, dtiAfter, ltv float64, hasLTV bool) []string {
	var recs []string
	if dtiAfter > 43 {
		recs = append(recs, "Your debt-to-income ratio is high. Consider reducing other debt or increasing income.")
	}
	if in.CreditScore < 670 {
		recs = append(recs, "Work on improving your credit score to qualify for better interest rates.")
	}
	if hasLTV && ltv > 80 {
		recs = append(recs, "Consider making a larger down payment to reduce loan-to-value ratio and avoid PMI.")
	}
	if in.ExtraPayment == 0 {
		recs = append(recs, "Making extra payments could significantly reduce your total interest paid and loan term.")
	}
	if len(recs) == 0 {
		recs = append(recs, "Your financial profile appears strong for this loan.")
	}
	return recs
}
