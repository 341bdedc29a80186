// Package money formats dollar amounts and percentages for display.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.English)

// Currency renders a dollar amount with thousands grouping, e.g. $1,234.56.
func Currency(v float64) string { return usd.Sprintf("$%.2f", v) }

// Percent renders an already-scaled percentage, e.g. 41.25%.
func Percent(v float64) string { return usd.Sprintf("%.2f%%", v) }
