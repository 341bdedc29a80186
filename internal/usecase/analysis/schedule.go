package analysis

import (
	"fmt"
	"math"

	"loan-guidance-api/internal/domain/loan"
)

// generateSchedule simulates at most the first twelve monthly payments.
// Long loans get one synthesized "final payoff" row whose position comes
// from the closed-form payoff-count formula and whose cumulative interest
// is a linear approximation; both are contractual, an exact month-by-month
// simulation would change the output. A summary row with totals always
// trails the schedule.
func generateSchedule(in loan.Request) []loan.PaymentEntry {
	monthlyRate := in.InterestRate / 100 / 12
	nPayments := in.LoanTerm * 12
	payment := monthlyPayment(in.LoanAmount, monthlyRate, nPayments)

	balance := in.LoanAmount
	totalInterest := 0.0

	simulated := nPayments
	if simulated > 12 {
		simulated = 12
	}

	schedule := make([]loan.PaymentEntry, 0, simulated+2)
	for i := 1; i <= simulated; i++ {
		interest := balance * monthlyRate
		principal := payment - interest + in.ExtraPayment
		balance -= principal
		if balance < 0 {
			// Absorb the overpayment into the final row's principal
			// instead of leaving a negative balance.
			principal += balance
			balance = 0
		}
		totalInterest += interest

		schedule = append(schedule, loan.PaymentEntry{
			PaymentNumber:     i,
			PaymentDate:       fmt.Sprintf("2024-%02d-01", (i-1)%12+1),
			PaymentAmount:     round2(payment + in.ExtraPayment),
			PrincipalPayment:  round2(principal),
			InterestPayment:   round2(interest),
			RemainingBalance:  round2(balance),
			TotalInterestPaid: round2(totalInterest),
		})
		if balance <= 0 {
			break
		}
	}

	if nPayments > 12 && balance > 0 {
		schedule = append(schedule, finalPayoffRow(payment, monthlyRate, balance, totalInterest, simulated))
	}

	schedule = append(schedule, summaryRow(in, payment, nPayments))
	return schedule
}

// finalPayoffRow estimates where the loan actually ends. The remaining
// payment count is the closed-form annuity payoff formula; the cumulative
// interest adds (paymentsLeft-1) * balance*rate/2, a deliberate linear
// approximation of the declining interest on the remaining months.
func finalPayoffRow(payment, monthlyRate, balance, totalInterest float64, simulated int) loan.PaymentEntry {
	var paymentsLeft int
	if monthlyRate == 0 {
		paymentsLeft = int(math.Ceil(balance / payment))
	} else {
		paymentsLeft = int(math.Ceil(
			math.Log(payment/(payment-balance*monthlyRate)) / math.Log(1+monthlyRate)))
	}
	finalNumber := paymentsLeft + simulated

	interest := balance * monthlyRate
	estTotal := totalInterest + float64(paymentsLeft-1)*(balance*monthlyRate/2)

	month := finalNumber % 12
	if month == 0 {
		month = 12
	}
	return loan.PaymentEntry{
		PaymentNumber:     finalNumber,
		PaymentDate:       fmt.Sprintf("Year %d, Month %d", finalNumber/12+1, month),
		PaymentAmount:     round2(balance + interest),
		PrincipalPayment:  round2(balance),
		InterestPayment:   round2(interest),
		RemainingBalance:  0,
		TotalInterestPaid: round2(estTotal),
	}
}

// summaryRow carries the nominal totals. The payoff time under extra
// payments is a simplified proportional-reduction heuristic, truncated to
// whole months, not a simulation.
func summaryRow(in loan.Request, payment float64, nPayments int) loan.PaymentEntry {
	years := float64(in.LoanTerm)
	months := float64(nPayments)
	if in.ExtraPayment > 0 {
		years -= in.ExtraPayment * float64(in.LoanTerm) / (in.LoanAmount / 3)
		months -= in.ExtraPayment * float64(nPayments) / (in.LoanAmount / 3)
	}
	monthsInt := int(months)

	total := payment * float64(nPayments)
	return loan.PaymentEntry{
		PaymentNumber:     loan.SummaryRow,
		PaymentAmount:     round2(total),
		PrincipalPayment:  round2(in.LoanAmount),
		InterestPayment:   round2(total - in.LoanAmount),
		RemainingBalance:  0,
		TotalInterestPaid: round2(total - in.LoanAmount),
		YearsToPayoff:     &years,
		MonthsToPayoff:    &monthsInt,
	}
}
