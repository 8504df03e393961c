package documents

import (
	"fmt"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/risk"
)

const (
	TitleCover            = "Cover"
	TitleInspectionDigest = "Inspection Digest"
)

// Company is the buying business, used when the bill of sale names no buyer.
type Company struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Assembler turns case aggregates into documents. It holds no mutable state.
type Assembler struct {
	company Company
	now     func() time.Time
}

type Option func(*Assembler)

// WithClock overrides the clock used for generation timestamps.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

func NewAssembler(company Company, opts ...Option) *Assembler {
	a := &Assembler{company: company, now: func() time.Time { return time.Now().UTC() }}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Assemble builds the requested variant. Missing nested records degrade the
// affected sections to their default text; only an unknown kind is an error.
func (a *Assembler) Assemble(kind Kind, agg entities.CaseAggregate) (Document, error) {
	var sections []Section
	switch kind {
	case KindBillOfSale:
		sections = a.billOfSaleSections(agg)
	case KindQuoteSummaryBasic:
		sections = basicQuoteSections(agg)
	case KindQuoteSummaryAnalytic:
		sections = analyticQuoteSections(agg)
	case KindCaseSummary:
		sections = caseSummarySections(agg)
	case KindCompletePackage:
		sections = a.completePackageSections(agg)
	default:
		return Document{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return Document{
		Kind:        kind,
		Title:       kind.Title(),
		CaseID:      agg.Case.ID,
		GeneratedAt: a.now(),
		Sections:    sections,
	}, nil
}

func basicQuoteSections(agg entities.CaseAggregate) []Section {
	return []Section{
		vehicleIdentificationSection(agg),
		customerSection(agg),
		inspectionOverviewSection(agg),
		offerSection(agg),
	}
}

func analyticQuoteSections(agg entities.CaseAggregate) []Section {
	assessment := risk.Assess(agg.Vehicle, agg.Inspection, agg.Quote)
	return []Section{
		vehicleIdentificationSection(agg),
		customerSection(agg),
		marketValueSection(agg),
		inspectionOverviewSection(agg),
		inspectionDetailSection(agg),
		obd2Section(agg),
		safetySection(agg),
		maintenanceSection(agg),
		riskSection(assessment),
		recommendationsSection(agg, assessment),
		documentationSection(agg),
	}
}

// completePackageSections is the cover followed by the analytic quote, the
// inspection digest and the bill of sale, each starting on a new page.
func (a *Assembler) completePackageSections(agg entities.CaseAggregate) []Section {
	sections := []Section{a.coverSection(agg)}
	for _, part := range [][]Section{
		analyticQuoteSections(agg),
		{inspectionDigestSection(agg)},
		a.billOfSaleSections(agg),
	} {
		part[0].NewPage = true
		sections = append(sections, part...)
	}
	return sections
}

func (a *Assembler) coverSection(agg entities.CaseAggregate) Section {
	v := resolveVehicle(agg)
	return Section{
		Title: TitleCover,
		Blocks: []Block{
			KeyValue("Case ID", firstNonEmpty(agg.Case.ID, notAvailable)),
			KeyValue("Seller", resolveSeller(agg).Name),
			KeyValue("Buyer", resolveBuyer(agg, a.company).Name),
			KeyValue("Vehicle", v.Description()),
			KeyValue("VIN", v.VIN),
			KeyValue("Prepared", date(ptrTime(a.now()), notAvailable)),
			Paragraph("Contents: " + KindQuoteSummaryAnalytic.Title() + ", " + TitleInspectionDigest + ", " + KindBillOfSale.Title() + "."),
		},
	}
}

func inspectionDigestSection(agg entities.CaseAggregate) Section {
	i := agg.Inspection
	if i == nil {
		return Section{Title: TitleInspectionDigest, Blocks: []Block{Paragraph("No inspection data available.")}}
	}
	blocks := []Block{
		KeyValue("Overall Rating", rating(i.OverallRating)),
		KeyValue("Critical Safety Issues", number(i.CriticalSafetyIssues())),
	}
	for _, sec := range i.Sections {
		blocks = append(blocks, KeyValue(firstNonEmpty(sec.Name, "Unnamed Section"), rating(sec.Rating)))
	}
	if i.Notes != "" {
		blocks = append(blocks, Paragraph("Inspector notes: "+i.Notes))
	}
	return Section{Title: TitleInspectionDigest, Blocks: blocks}
}
