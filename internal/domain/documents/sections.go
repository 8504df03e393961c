package documents

import (
	"fmt"
	"sort"
	"strings"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/risk"

	"github.com/shopspring/decimal"
)

const (
	TitleVehicleIdentification = "Vehicle Identification"
	TitleCustomerInformation   = "Customer Information"
	TitleMarketValue           = "Market Value Analysis"
	TitleInspectionOverview    = "Inspection Overview"
	TitleInspectionDetails     = "Inspection Section Details"
	TitleOBD2                  = "OBD2 Diagnostic Summary"
	TitleSafety                = "Safety Issues"
	TitleMaintenance           = "Maintenance Items"
	TitleRisk                  = "Risk Assessment"
	TitleRecommendations       = "Recommendations"
	TitleDocumentation         = "Documentation"
	TitleOfferSummary          = "Offer Summary"
)

const maxDisplayedFactors = 3

func vehicleIdentificationSection(agg entities.CaseAggregate) Section {
	v := resolveVehicle(agg)
	return Section{
		Title: TitleVehicleIdentification,
		Blocks: []Block{
			KeyValue("Year", v.Year),
			KeyValue("Make", v.Make),
			KeyValue("Model", v.Model),
			KeyValue("Trim", v.Trim),
			KeyValue("VIN", v.VIN),
			KeyValue("Mileage", v.Mileage),
			KeyValue("Color", v.Color),
			KeyValue("License Plate", v.LicensePlate),
			KeyValue("Title Status", v.TitleStatus),
		},
	}
}

func customerSection(agg entities.CaseAggregate) Section {
	s := resolveSeller(agg)
	return Section{
		Title: TitleCustomerInformation,
		Blocks: []Block{
			KeyValue("Name", s.Name),
			KeyValue("Phone", s.Phone),
			KeyValue("Email", s.Email),
			KeyValue("Address", s.Address),
		},
	}
}

func marketValueSection(agg entities.CaseAggregate) Section {
	m := AnalyzeMarket(agg.Vehicle, agg.Quote)
	offer := offerText(agg.Quote)
	if !m.Available {
		return Section{
			Title: TitleMarketValue,
			Blocks: []Block{
				KeyValue("Estimated Market Value", "Not available"),
				KeyValue("Offer Amount", offer),
			},
		}
	}
	return Section{
		Title: TitleMarketValue,
		Blocks: []Block{
			KeyValue("Estimated Market Value", money(decimal.NewFromFloat(m.EstimatedValue))),
			KeyValue("Offer Amount", offer),
			KeyValue("Difference", fmt.Sprintf("%s (%s)", money(decimal.NewFromFloat(m.Difference)), percent(m.Percentage))),
			KeyValue("Market Position", fmt.Sprintf("Offer is %s", m.Band)),
		},
	}
}

func inspectionOverviewSection(agg entities.CaseAggregate) Section {
	i := agg.Inspection
	if i == nil {
		return Section{Title: TitleInspectionOverview, Blocks: []Block{Paragraph("No inspection data available.")}}
	}
	return Section{
		Title: TitleInspectionOverview,
		Blocks: []Block{
			KeyValue("Inspector", firstNonEmpty(i.InspectorName, notProvided)),
			KeyValue("Inspection Date", date(i.CompletedAt, notAvailable)),
			KeyValue("Overall Rating", rating(i.OverallRating)),
			KeyValue("Sections Inspected", number(len(i.Sections))),
			KeyValue("Critical Issues", number(countCriticalIssues(i))),
			KeyValue("Safety Issues", number(len(i.SafetyIssues))),
			KeyValue("Maintenance Items", number(len(i.MaintenanceItems))),
		},
	}
}

func inspectionDetailSection(agg entities.CaseAggregate) Section {
	s := Section{Title: TitleInspectionDetails}
	if agg.Inspection == nil || len(agg.Inspection.Sections) == 0 {
		s.Blocks = []Block{Paragraph("No inspection sections recorded.")}
		return s
	}
	for _, sec := range agg.Inspection.Sections {
		critical := CriticalQuestions(sec)
		s.Blocks = append(s.Blocks, KeyValue(
			firstNonEmpty(sec.Name, "Unnamed Section"),
			fmt.Sprintf("Rating %s, %d critical issue(s)", rating(sec.Rating), len(critical)),
		))
		for _, q := range critical {
			s.Blocks = append(s.Blocks, Paragraph(fmt.Sprintf("- %s: %s", q.Question, answerText(q.Answer))))
		}
		if sec.Notes != "" {
			s.Blocks = append(s.Blocks, Paragraph("Notes: "+sec.Notes))
		}
	}
	return s
}

func obd2Section(agg entities.CaseAggregate) Section {
	var scan *entities.OBD2Scan
	if agg.Quote != nil {
		scan = agg.Quote.OBD2Scan
	}
	if scan == nil {
		return Section{Title: TitleOBD2, Blocks: []Block{Paragraph("No OBD2 scan data available.")}}
	}
	sum := SummarizeOBD2(scan)
	blocks := []Block{
		KeyValue("Total Codes", fmt.Sprint(sum.Total)),
		KeyValue("Critical Codes", fmt.Sprint(sum.Critical)),
		KeyValue("Unknown Codes", fmt.Sprint(sum.Unknown)),
	}
	if len(scan.CriticalCodes) > 0 {
		blocks = append(blocks, KeyValue("Critical Code List", strings.Join(scan.CriticalCodes, ", ")))
	}
	if scan.ScannedAt != nil {
		blocks = append(blocks, KeyValue("Scan Date", date(scan.ScannedAt, notAvailable)))
	}
	return Section{Title: TitleOBD2, Blocks: blocks}
}

func safetySection(agg entities.CaseAggregate) Section {
	if agg.Inspection == nil || len(agg.Inspection.SafetyIssues) == 0 {
		return Section{Title: TitleSafety, Blocks: []Block{Paragraph("No safety issues reported.")}}
	}
	s := Section{Title: TitleSafety}
	for _, issue := range agg.Inspection.SafetyIssues {
		line := fmt.Sprintf("[%s] %s", strings.ToUpper(firstNonEmpty(issue.Severity, "unknown")), issue.Description)
		if issue.Location != "" {
			line += " (" + issue.Location + ")"
		}
		s.Blocks = append(s.Blocks, Paragraph(line))
	}
	return s
}

func maintenanceSection(agg entities.CaseAggregate) Section {
	if agg.Inspection == nil || len(agg.Inspection.MaintenanceItems) == 0 {
		return Section{Title: TitleMaintenance, Blocks: []Block{Paragraph("No maintenance items recorded.")}}
	}
	s := Section{Title: TitleMaintenance}
	total := decimal.Zero
	for _, item := range agg.Inspection.MaintenanceItems {
		value := firstNonEmpty(item.Priority, "unspecified") + " priority"
		if item.EstimatedCost != nil {
			cost := decimal.NewFromFloat(*item.EstimatedCost)
			total = total.Add(cost)
			value += ", est. " + money(cost)
		}
		s.Blocks = append(s.Blocks, KeyValue(item.Description, value))
	}
	s.Blocks = append(s.Blocks, KeyValue("Estimated Total", money(total)))
	return s
}

func riskSection(a risk.Assessment) Section {
	factors := "None identified"
	if len(a.Factors) > 0 {
		factors = strings.Join(TruncateFactors(a.Factors, maxDisplayedFactors), "; ")
	}
	return Section{
		Title: TitleRisk,
		Blocks: []Block{
			KeyValue("Risk Score", fmt.Sprint(a.Score)),
			KeyValue("Risk Level", string(a.Level)),
			KeyValue("Risk Factors", factors),
		},
	}
}

var levelRecommendations = map[risk.Level]string{
	risk.LevelLow:    "Vehicle presents low acquisition risk. Proceed with the standard purchase process.",
	risk.LevelMedium: "Review the flagged risk factors with the seller before finalizing the offer.",
	risk.LevelHigh:   "High acquisition risk. Obtain manager approval before extending or honoring the offer.",
}

func recommendationsSection(agg entities.CaseAggregate, a risk.Assessment) Section {
	blocks := []Block{Paragraph(levelRecommendations[a.Level])}
	if agg.Quote != nil && agg.Quote.OBD2Scan != nil && len(agg.Quote.OBD2Scan.CriticalCodes) > 0 {
		blocks = append(blocks, Paragraph("Confirm the critical OBD2 codes with a full diagnostic before purchase."))
	}
	if agg.Inspection != nil && agg.Inspection.CriticalSafetyIssues() > 0 {
		blocks = append(blocks, Paragraph("Account for critical safety repairs in the final price."))
	}
	if agg.Vehicle != nil && agg.Vehicle.TitleStatus != entities.TitleStatusClean {
		blocks = append(blocks, Paragraph("Verify the title history and branding with the state registry."))
	}
	if agg.Vehicle != nil && agg.Vehicle.LoanStatus == entities.LoanStatusStillHasLoan {
		blocks = append(blocks, Paragraph("Request a lender payoff letter before releasing payment."))
	}
	if m := AnalyzeMarket(agg.Vehicle, agg.Quote); m.Available && m.Band == MarketAbove {
		blocks = append(blocks, Paragraph("The offer exceeds the estimated market value; re-check the valuation."))
	}
	return Section{Title: TitleRecommendations, Blocks: blocks}
}

func documentationSection(agg entities.CaseAggregate) Section {
	c := agg.Case.Completion
	hasBillOfSale := agg.BillOfSale() != nil
	blocks := []Block{
		Checkboxes("Case Documents",
			CheckboxOption{Label: "Bill of sale prepared", Checked: hasBillOfSale},
			CheckboxOption{Label: "Title confirmed", Checked: c.TitleConfirmation},
			CheckboxOption{Label: "PDF package generated", Checked: c.PDFGenerated},
			CheckboxOption{Label: "Thank-you sent", Checked: c.ThankYouSent},
		),
	}
	if len(c.LeaveBehind) > 0 {
		items := make([]string, 0, len(c.LeaveBehind))
		for item := range c.LeaveBehind {
			items = append(items, item)
		}
		sort.Strings(items)
		opts := make([]CheckboxOption, 0, len(items))
		for _, item := range items {
			opts = append(opts, CheckboxOption{Label: item, Checked: c.LeaveBehind[item]})
		}
		blocks = append(blocks, Checkboxes("Leave-Behind Checklist", opts...))
	}
	return Section{Title: TitleDocumentation, Blocks: blocks}
}

func offerSection(agg entities.CaseAggregate) Section {
	q := agg.Quote
	if q == nil {
		return Section{Title: TitleOfferSummary, Blocks: []Block{Paragraph("No quote has been prepared.")}}
	}
	return Section{
		Title: TitleOfferSummary,
		Blocks: []Block{
			KeyValue("Offer Amount", offerText(q)),
			KeyValue("Quote Status", firstNonEmpty(string(q.Status), string(entities.QuoteStatusPending))),
			KeyValue("Valid Until", date(q.ValidUntil, notAvailable)),
			KeyValue("Prepared By", firstNonEmpty(q.PreparedBy, notProvided)),
		},
	}
}

func offerText(q *entities.Quote) string {
	if q == nil {
		return notAvailable
	}
	return moneyPtr(q.OfferAmount, notAvailable)
}
