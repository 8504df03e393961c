package documents

import (
	"testing"
	"time"

	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 5, 4, 15, 30, 0, 0, time.UTC)

func newTestAssembler() *Assembler {
	return NewAssembler(Company{Name: "Acme Auto Buyers", Phone: "555-0100"}, WithClock(func() time.Time { return fixedNow }))
}

func fullAggregate() entities.CaseAggregate {
	c := workflow.NewCase("case-42", fixedNow.Add(-48*time.Hour))
	return entities.CaseAggregate{
		Case: c,
		Customer: &entities.Customer{
			FirstName: "Dana",
			LastName:  "Reyes",
			Email:     "dana@example.com",
			Phone:     "555-0142",
			Address:   &entities.Address{Street: "12 Elm St", City: "Austin", State: "TX", ZipCode: "78701"},
		},
		Vehicle: &entities.Vehicle{
			Year: ptr(2017), Make: "Honda", Model: "Civic", VIN: "2HGFC2F59HH000001", Mileage: ptr(45000),
			TitleStatus: "rebuilt", LoanStatus: "still-has-loan", LoanAmount: ptr(3200.0), EstimatedValue: ptr(20000.0),
		},
		Inspection: &entities.Inspection{
			InspectorName: "Sam Ortiz",
			OverallRating: ptr(3.5),
			Sections: []entities.InspectionSection{
				{Name: "Engine", Rating: ptr(3.0), Questions: []entities.InspectionQuestion{
					{Question: "Starts cleanly?", Answer: "Yes"},
					{Question: "Belt condition", Answer: "noisy"},
					{Question: "Check engine light off?", Answer: true},
				}},
				{Name: "Brakes", Rating: ptr(4.0), Questions: []entities.InspectionQuestion{
					{Question: "Pads", Answer: "fail"},
				}},
			},
			SafetyIssues: []entities.SafetyIssue{{Severity: "critical", Description: "Brake pads below limit", Location: "front"}},
			MaintenanceItems: []entities.MaintenanceItem{
				{Description: "Replace brake pads", Priority: "high", EstimatedCost: ptr(320.0)},
				{Description: "Serpentine belt", Priority: "medium", EstimatedCost: ptr(180.0)},
			},
		},
		Quote: &entities.Quote{
			OfferAmount: ptr(16000.0),
			Status:      entities.QuoteStatusAccepted,
			OBD2Scan:    &entities.OBD2Scan{ExtractedCodes: []string{"P0300", "P0420", "P0171"}, CriticalCodes: []string{"P0300"}},
		},
		Transaction: &entities.Transaction{BillOfSale: &entities.BillOfSale{
			BaseVehiclePrice:  ptr(16000.0),
			RepairsAdjustment: ptr(500.0),
			LoanPayoff:        ptr(3200.0),
			PaymentMethod:     "ACH",
			TaxesPaidBy:       "seller",
			OdometerAccurate:  true,
		}},
	}
}

func value(t *testing.T, d Document, section, label string) string {
	t.Helper()
	s, ok := d.Section(section)
	require.True(t, ok, "section %q missing", section)
	v, ok := s.Value(label)
	require.True(t, ok, "label %q missing in %q", label, section)
	return v
}

func TestAssemble_AnalyticSectionOrder(t *testing.T) {
	d, err := newTestAssembler().Assemble(KindQuoteSummaryAnalytic, fullAggregate())
	require.NoError(t, err)

	assert.Equal(t, []string{
		TitleVehicleIdentification,
		TitleCustomerInformation,
		TitleMarketValue,
		TitleInspectionOverview,
		TitleInspectionDetails,
		TitleOBD2,
		TitleSafety,
		TitleMaintenance,
		TitleRisk,
		TitleRecommendations,
		TitleDocumentation,
	}, d.SectionTitles())
	assert.Equal(t, "case-42", d.CaseID)
	assert.Equal(t, fixedNow, d.GeneratedAt)
}

func TestAssemble_AnalyticValues(t *testing.T) {
	d, err := newTestAssembler().Assemble(KindQuoteSummaryAnalytic, fullAggregate())
	require.NoError(t, err)

	assert.Equal(t, "$20,000.00", value(t, d, TitleMarketValue, "Estimated Market Value"))
	assert.Equal(t, "$4,000.00 (20.0%)", value(t, d, TitleMarketValue, "Difference"))
	assert.Equal(t, "Offer is significantly below market", value(t, d, TitleMarketValue, "Market Position"))

	assert.Equal(t, "3", value(t, d, TitleOBD2, "Total Codes"))
	assert.Equal(t, "1", value(t, d, TitleOBD2, "Critical Codes"))
	assert.Equal(t, "2", value(t, d, TitleOBD2, "Unknown Codes"))

	assert.Equal(t, "2", value(t, d, TitleInspectionOverview, "Critical Issues"))
	assert.Equal(t, "3.5/5", value(t, d, TitleInspectionOverview, "Overall Rating"))
	assert.Equal(t, "Rating 3/5, 1 critical issue(s)", value(t, d, TitleInspectionDetails, "Engine"))
	assert.Equal(t, "$500.00", value(t, d, TitleMaintenance, "Estimated Total"))

	// rating 3.5 (+2), 1 OBD2 (+1), 1 safety (+2), rebuilt title (+2), loan (+1)
	assert.Equal(t, "8", value(t, d, TitleRisk, "Risk Score"))
	assert.Equal(t, "HIGH", value(t, d, TitleRisk, "Risk Level"))
	assert.Equal(t, "Below average inspection rating; 1 critical OBD2 codes; 1 critical safety issues; +2 more",
		value(t, d, TitleRisk, "Risk Factors"))
}

func TestAssemble_MarketValueUnavailable(t *testing.T) {
	agg := fullAggregate()
	agg.Vehicle.EstimatedValue = nil

	d, err := newTestAssembler().Assemble(KindQuoteSummaryAnalytic, agg)
	require.NoError(t, err)

	assert.Equal(t, "Not available", value(t, d, TitleMarketValue, "Estimated Market Value"))
	s, _ := d.Section(TitleMarketValue)
	_, ok := s.Value("Market Position")
	assert.False(t, ok)
}

func TestAssemble_BasicQuoteHasNoAnalysis(t *testing.T) {
	d, err := newTestAssembler().Assemble(KindQuoteSummaryBasic, fullAggregate())
	require.NoError(t, err)

	assert.Equal(t, []string{TitleVehicleIdentification, TitleCustomerInformation, TitleInspectionOverview, TitleOfferSummary}, d.SectionTitles())
	assert.Equal(t, "$16,000.00", value(t, d, TitleOfferSummary, "Offer Amount"))
}

func TestAssemble_BillOfSale(t *testing.T) {
	d, err := newTestAssembler().Assemble(KindBillOfSale, fullAggregate())
	require.NoError(t, err)

	require.Len(t, d.Sections, 11)
	assert.Equal(t, TitleBOSParties, d.Sections[0].Title)
	assert.Equal(t, TitleBOSSignature, d.Sections[10].Title)

	assert.Equal(t, "Dana Reyes", value(t, d, TitleBOSParties, "Seller Name"))
	assert.Equal(t, "12 Elm St, Austin, TX 78701", value(t, d, TitleBOSParties, "Seller Address"))
	assert.Equal(t, "Acme Auto Buyers", value(t, d, TitleBOSParties, "Buyer Name"))
	assert.Equal(t, "Not Provided", value(t, d, TitleBOSParties, "Buyer Address"))
	assert.Equal(t, "45,000 miles (Actual mileage)", value(t, d, TitleBOSOdometer, "Odometer Reading"))

	assert.Equal(t, "$16,000.00", value(t, d, TitleBOSPrice, "Base Vehicle Price"))
	assert.Equal(t, "-$500.00", value(t, d, TitleBOSPrice, "Repairs Adjustment"))
	assert.Equal(t, "-$3,200.00", value(t, d, TitleBOSPrice, "Loan Payoff"))
	assert.Equal(t, "$12,300.00", value(t, d, TitleBOSPrice, "Total Purchase Price"))
	assert.Equal(t, "May 4, 2026", value(t, d, TitleBOSTransfer, "Date of Sale"))

	pay, _ := d.Section(TitleBOSPayment)
	sel := checked(pay.Blocks[0].Options)
	require.Len(t, sel, 1)
	assert.Equal(t, "Wire/ACH", sel[0].Label)

	taxes, _ := d.Section(TitleBOSTaxes)
	sel = checked(taxes.Blocks[0].Options)
	require.Len(t, sel, 1)
	assert.Equal(t, "Seller", sel[0].Label)
}

func TestAssemble_BillOfSaleOverridesWin(t *testing.T) {
	agg := fullAggregate()
	bos := agg.Transaction.BillOfSale
	bos.SellerName = "Dana R. Reyes-Lopez"
	bos.VehicleVIN = "OVERRIDEVIN000001"
	bos.VehicleMileage = ptr(45120)
	bos.OdometerAccurate = false

	d, err := newTestAssembler().Assemble(KindBillOfSale, agg)
	require.NoError(t, err)

	assert.Equal(t, "Dana R. Reyes-Lopez", value(t, d, TitleBOSParties, "Seller Name"))
	assert.Equal(t, "OVERRIDEVIN000001", value(t, d, TitleBOSVehicle, "VIN"))
	assert.Equal(t, "45,120 miles (Not Actual mileage)", value(t, d, TitleBOSOdometer, "Odometer Reading"))
}

func TestAssemble_EmptyAggregateDegrades(t *testing.T) {
	agg := entities.CaseAggregate{Case: workflow.NewCase("case-empty", fixedNow)}
	a := newTestAssembler()

	for _, kind := range []Kind{KindBillOfSale, KindQuoteSummaryBasic, KindQuoteSummaryAnalytic, KindCaseSummary, KindCompletePackage} {
		d, err := a.Assemble(kind, agg)
		require.NoError(t, err, kind)
		assert.NotEmpty(t, d.Sections, kind)
	}

	bos, _ := a.Assemble(KindBillOfSale, agg)
	assert.Equal(t, "Not Provided", value(t, bos, TitleBOSParties, "Seller Name"))
	assert.Equal(t, "N/A", value(t, bos, TitleBOSVehicle, "VIN"))
	assert.Equal(t, "N/A (Not Actual mileage)", value(t, bos, TitleBOSOdometer, "Odometer Reading"))
	assert.Equal(t, "$0.00", value(t, bos, TitleBOSPrice, "Total Purchase Price"))
	pay, _ := bos.Section(TitleBOSPayment)
	sel := checked(pay.Blocks[0].Options)
	require.Len(t, sel, 1)
	assert.Equal(t, "Other", sel[0].Label)

	analytic, _ := a.Assemble(KindQuoteSummaryAnalytic, agg)
	overview, _ := analytic.Section(TitleInspectionOverview)
	assert.Equal(t, Paragraph("No inspection data available."), overview.Blocks[0])
	obd, _ := analytic.Section(TitleOBD2)
	assert.Equal(t, Paragraph("No OBD2 scan data available."), obd.Blocks[0])
	assert.Equal(t, "LOW", value(t, analytic, TitleRisk, "Risk Level"))
	assert.Equal(t, "None identified", value(t, analytic, TitleRisk, "Risk Factors"))
}

func TestAssemble_CaseSummary(t *testing.T) {
	agg := fullAggregate()
	agg.Tracking = &entities.TimeTracking{
		CaseID:     "case-42",
		StageTimes: map[string]entities.StageTime{"intake": {TotalTime: int64(90 * time.Minute / time.Millisecond)}},
		TotalTime:  int64(90 * time.Minute / time.Millisecond),
	}

	d, err := newTestAssembler().Assemble(KindCaseSummary, agg)
	require.NoError(t, err)

	assert.Equal(t, []string{TitleCaseInformation, TitleStageProgress, TitleCustomerInformation, TitleVehicleInformation, TitleTransactionSummary}, d.SectionTitles())
	assert.Equal(t, "1 - Intake", value(t, d, TitleCaseInformation, "Current Stage"))
	assert.Equal(t, "1h 30m", value(t, d, TitleCaseInformation, "Time in Workflow"))
	assert.Equal(t, "active, 1h 30m", value(t, d, TitleStageProgress, "1. Intake"))
	assert.Equal(t, "pending", value(t, d, TitleStageProgress, "7. Completion"))
	assert.Equal(t, "$12,300.00", value(t, d, TitleTransactionSummary, "Total Purchase Price"))
	assert.Equal(t, "Wire/ACH", value(t, d, TitleTransactionSummary, "Payment Method"))
}

func TestAssemble_CompletePackage(t *testing.T) {
	d, err := newTestAssembler().Assemble(KindCompletePackage, fullAggregate())
	require.NoError(t, err)

	titles := d.SectionTitles()
	require.Len(t, titles, 1+11+1+11)
	assert.Equal(t, TitleCover, titles[0])
	assert.Equal(t, TitleVehicleIdentification, titles[1])
	assert.Equal(t, TitleInspectionDigest, titles[12])
	assert.Equal(t, TitleBOSParties, titles[13])

	var pageStarts []string
	for _, s := range d.Sections {
		if s.NewPage {
			pageStarts = append(pageStarts, s.Title)
		}
	}
	assert.Equal(t, []string{TitleVehicleIdentification, TitleInspectionDigest, TitleBOSParties}, pageStarts)
	assert.Equal(t, "2017 Honda Civic", value(t, d, TitleCover, "Vehicle"))
}

func TestAssemble_UnknownKind(t *testing.T) {
	_, err := newTestAssembler().Assemble(Kind("invoice"), fullAggregate())
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("invoice")
	assert.ErrorIs(t, err, ErrUnknownKind)

	k, err := ParseKind("bill_of_sale")
	require.NoError(t, err)
	assert.Equal(t, KindBillOfSale, k)
}
