package documents

import (
	"fmt"
	"strings"

	"vehicle_acquisition/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PaymentMethod is one of the checkboxes printed on the bill of sale.
type PaymentMethod string

const (
	PaymentCash          PaymentMethod = "Cash"
	PaymentCheck         PaymentMethod = "Check"
	PaymentCashiersCheck PaymentMethod = "Cashier's Check"
	PaymentWireACH       PaymentMethod = "Wire/ACH"
	PaymentTrade         PaymentMethod = "Trade"
	PaymentGift          PaymentMethod = "Gift"
	PaymentOther         PaymentMethod = "Other"
)

// paymentMethods is the print order of the checkboxes.
var paymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentCheck,
	PaymentCashiersCheck,
	PaymentWireACH,
	PaymentTrade,
	PaymentGift,
	PaymentOther,
}

var paymentMethodAliases = map[string]PaymentMethod{
	"cash":            PaymentCash,
	"check":           PaymentCheck,
	"cashier's check": PaymentCashiersCheck,
	"cashiers check":  PaymentCashiersCheck,
	"wire transfer":   PaymentWireACH,
	"ach":             PaymentWireACH,
	"wire":            PaymentWireACH,
	"bank transfer":   PaymentWireACH,
	"trade":           PaymentTrade,
	"gift":            PaymentGift,
}

// ClassifyPaymentMethod matches the raw value case-insensitively. Anything
// unrecognised, including an empty value, is Other.
func ClassifyPaymentMethod(raw string) PaymentMethod {
	if m, ok := paymentMethodAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return m
	}
	return PaymentOther
}

// PaymentCheckboxes returns every payment checkbox with exactly one checked.
// The raw value is shown next to Other when Other is selected.
func PaymentCheckboxes(raw string) []CheckboxOption {
	selected := ClassifyPaymentMethod(raw)
	out := make([]CheckboxOption, 0, len(paymentMethods))
	for _, m := range paymentMethods {
		opt := CheckboxOption{Label: string(m), Checked: m == selected}
		if m == PaymentOther && opt.Checked {
			opt.Detail = strings.TrimSpace(raw)
		}
		out = append(out, opt)
	}
	return out
}

type TaxParty string

const (
	TaxPartyBuyer  TaxParty = "Buyer"
	TaxPartySeller TaxParty = "Seller"
)

// ClassifyTaxesPaidBy defaults to the buyer for anything but "seller".
func ClassifyTaxesPaidBy(raw string) TaxParty {
	if strings.EqualFold(strings.TrimSpace(raw), "seller") {
		return TaxPartySeller
	}
	return TaxPartyBuyer
}

func TaxCheckboxes(raw string) []CheckboxOption {
	selected := ClassifyTaxesPaidBy(raw)
	return []CheckboxOption{
		{Label: string(TaxPartyBuyer), Checked: selected == TaxPartyBuyer},
		{Label: string(TaxPartySeller), Checked: selected == TaxPartySeller},
	}
}

// Itemization is the purchase price breakdown. Total = Base - Adjustment - LoanPayoff.
type Itemization struct {
	Base       decimal.Decimal
	Adjustment decimal.Decimal
	LoanPayoff decimal.Decimal
	Total      decimal.Decimal
}

func Itemize(bos *entities.BillOfSale) Itemization {
	var it Itemization
	if bos != nil {
		switch {
		case bos.BaseVehiclePrice != nil:
			it.Base = decimal.NewFromFloat(*bos.BaseVehiclePrice)
		case bos.SalePrice != nil:
			it.Base = decimal.NewFromFloat(*bos.SalePrice)
		}
		if bos.RepairsAdjustment != nil {
			it.Adjustment = decimal.NewFromFloat(*bos.RepairsAdjustment)
		}
		if bos.LoanPayoff != nil {
			it.LoanPayoff = decimal.NewFromFloat(*bos.LoanPayoff)
		}
	}
	it.Total = it.Base.Sub(it.Adjustment).Sub(it.LoanPayoff)
	return it
}

func OdometerSuffix(accurate bool) string {
	if accurate {
		return "(Actual mileage)"
	}
	return "(Not Actual mileage)"
}

type MarketBand string

const (
	MarketSignificantlyBelow MarketBand = "significantly below market"
	MarketBelow              MarketBand = "below market"
	MarketAt                 MarketBand = "at market"
	MarketAbove              MarketBand = "above market"
)

// marketBands are checked top to bottom against the percentage below the
// estimated value; the first threshold exceeded wins.
var marketBands = []struct {
	above float64
	band  MarketBand
}{
	{above: 15, band: MarketSignificantlyBelow},
	{above: 5, band: MarketBelow},
	{above: -5, band: MarketAt},
}

func ClassifyMarket(percentage float64) MarketBand {
	for _, b := range marketBands {
		if percentage > b.above {
			return b.band
		}
	}
	return MarketAbove
}

type MarketAnalysis struct {
	Available      bool
	EstimatedValue float64
	OfferAmount    float64
	Difference     float64
	Percentage     float64
	Band           MarketBand
}

// AnalyzeMarket compares the offer to the vehicle's estimated value. A missing
// offer counts as zero.
func AnalyzeMarket(v *entities.Vehicle, q *entities.Quote) MarketAnalysis {
	var m MarketAnalysis
	if q != nil && q.OfferAmount != nil {
		m.OfferAmount = *q.OfferAmount
	}
	if v == nil || v.EstimatedValue == nil {
		return m
	}
	m.Available = true
	m.EstimatedValue = *v.EstimatedValue
	m.Difference = m.EstimatedValue - m.OfferAmount
	if m.EstimatedValue > 0 {
		m.Percentage = m.Difference / m.EstimatedValue * 100
	}
	m.Band = ClassifyMarket(m.Percentage)
	return m
}

// OBD2Summary counts scan codes. Unknown is not clamped and goes negative when
// the critical list is longer than the extracted list.
type OBD2Summary struct {
	Total    int
	Critical int
	Unknown  int
}

func SummarizeOBD2(scan *entities.OBD2Scan) OBD2Summary {
	if scan == nil {
		return OBD2Summary{}
	}
	s := OBD2Summary{Total: len(scan.ExtractedCodes), Critical: len(scan.CriticalCodes)}
	s.Unknown = s.Total - s.Critical
	return s
}

var criticalAnswerMarkers = []string{"no", "fail", "issue", "problem"}

// IsCriticalAnswer flags string answers containing any marker as a substring,
// so "noisy" matches "no". Non-string answers never match.
func IsCriticalAnswer(answer any) bool {
	s, ok := answer.(string)
	if !ok {
		return false
	}
	s = strings.ToLower(s)
	for _, m := range criticalAnswerMarkers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// CriticalQuestions returns the questions of a section with a critical answer.
func CriticalQuestions(section entities.InspectionSection) []entities.InspectionQuestion {
	var out []entities.InspectionQuestion
	for _, q := range section.Questions {
		if IsCriticalAnswer(q.Answer) {
			out = append(out, q)
		}
	}
	return out
}

func countCriticalIssues(i *entities.Inspection) int {
	if i == nil {
		return 0
	}
	n := 0
	for _, s := range i.Sections {
		n += len(CriticalQuestions(s))
	}
	return n
}

// TruncateFactors keeps the first max factors and appends "+N more" for the rest.
func TruncateFactors(factors []string, max int) []string {
	if len(factors) <= max {
		return factors
	}
	out := make([]string, 0, max+1)
	out = append(out, factors[:max]...)
	return append(out, fmt.Sprintf("+%d more", len(factors)-max))
}

func answerText(answer any) string {
	switch v := answer.(type) {
	case nil:
		return notAvailable
	case string:
		return v
	case bool:
		return yesNo(v)
	default:
		return fmt.Sprint(v)
	}
}
