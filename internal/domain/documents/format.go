package documents

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	notProvided  = "Not Provided"
	notAvailable = "N/A"
	dateLayout   = "January 2, 2006"
	signatureBar = "______________________________"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// money renders a value with thousands separators, e.g. $16,000.00.
func money(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-" + money(v.Neg())
	}
	return printer.Sprintf("$%.2f", v.Round(2).InexactFloat64())
}

// deduction renders an amount taken off the price with a leading minus sign.
func deduction(v decimal.Decimal) string {
	return "-" + money(v.Abs())
}

func moneyPtr(v *float64, fallback string) string {
	if v == nil {
		return fallback
	}
	return money(decimal.NewFromFloat(*v))
}

func number(n int) string {
	return printer.Sprintf("%d", n)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

func rating(v *float64) string {
	if v == nil {
		return notAvailable
	}
	return fmt.Sprintf("%s/5", decimal.NewFromFloat(*v).String())
}

func date(t *time.Time, fallback string) string {
	if t == nil || t.IsZero() {
		return fallback
	}
	return t.UTC().Format(dateLayout)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}
	return t.UTC().Format("January 2, 2006 15:04 MST")
}

// firstNonEmpty implements the override -> record -> literal fallback chain.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstInt(values ...*int) *int {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func duration(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func ptrTime(t time.Time) *time.Time { return &t }
