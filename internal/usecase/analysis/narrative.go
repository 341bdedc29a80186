package analysis

import (
	"fmt"
	"strings"

	"loan-guidance-api/internal/domain/loan"
	"loan-guidance-api/pkg/money"
)

// narrative renders the fixed display template from already-computed
// fields. Pure string templating; the text can be reduced to plain text
// with pkg/htmltext.
func narrative(overall loan.RiskLevel, category string, dtiAfter, payment, totalInterest float64, recs []string, in loan.Request) string {
	var b strings.Builder

	b.WriteString("<h3>Loan Assessment</h3>\n")
	fmt.Fprintf(&b,
		"<p>Based on your financial profile, this loan represents a %s risk. Your debt-to-income ratio is %.1f%%, which is considered %s.</p>\n",
		strings.ReplaceAll(string(overall), "_", " "), dtiAfter, category)

	b.WriteString("<h3>Recommendations</h3>\n<ul>\n")
	for _, r := range recs {
		fmt.Fprintf(&b, "<li>%s</li>\n", r)
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h3>Long-term Outlook</h3>\n")
	fmt.Fprintf(&b,
		"<p>With a monthly payment of %s, you'll pay a total of %s in interest over the %d year term. Making extra payments of %s per month could save you significantly in interest costs.</p>",
		money.Currency(payment), money.Currency(totalInterest), in.LoanTerm, money.Currency(in.ExtraPayment))

	return b.String()
}
