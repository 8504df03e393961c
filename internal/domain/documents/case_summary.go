package documents

import (
	"fmt"

	"vehicle_acquisition/internal/domain/entities"
)

const (
	TitleCaseInformation    = "Case Information"
	TitleStageProgress      = "Stage Progress"
	TitleVehicleInformation = "Vehicle Information"
	TitleTransactionSummary = "Transaction Summary"
)

func caseSummarySections(agg entities.CaseAggregate) []Section {
	c := agg.Case
	info := []Block{
		KeyValue("Case ID", firstNonEmpty(c.ID, notAvailable)),
		KeyValue("Current Stage", fmt.Sprintf("%d - %s", int(c.CurrentStage), c.CurrentStage.Title())),
		KeyValue("Status", firstNonEmpty(string(c.Status), notAvailable)),
		KeyValue("Created", timestamp(c.CreatedAt)),
		KeyValue("Last Activity", lastActivity(c.LastActivity)),
	}
	if agg.Tracking != nil {
		info = append(info, KeyValue("Time in Workflow", duration(agg.Tracking.TotalTime)))
	}

	progress := make([]Block, 0, int(entities.LastStage))
	for _, s := range entities.Stages() {
		value := string(c.StatusOf(s))
		if agg.Tracking != nil {
			if st, ok := agg.Tracking.StageTimes[s.Name()]; ok {
				value += ", " + duration(st.TotalTime)
			}
		}
		progress = append(progress, KeyValue(fmt.Sprintf("%d. %s", int(s), s.Title()), value))
	}

	vehicle := vehicleIdentificationSection(agg)
	vehicle.Title = TitleVehicleInformation

	return []Section{
		{Title: TitleCaseInformation, Blocks: info},
		{Title: TitleStageProgress, Blocks: progress},
		customerSection(agg),
		vehicle,
		transactionSection(agg),
	}
}

func transactionSection(agg entities.CaseAggregate) Section {
	t := agg.Transaction
	if t == nil {
		return Section{Title: TitleTransactionSummary, Blocks: []Block{Paragraph("No transaction recorded.")}}
	}
	it := Itemize(t.BillOfSale)
	method := notProvided
	if t.BillOfSale != nil {
		method = string(ClassifyPaymentMethod(t.BillOfSale.PaymentMethod))
		if method == string(PaymentOther) && t.BillOfSale.PaymentMethod != "" {
			method += " (" + t.BillOfSale.PaymentMethod + ")"
		}
	}
	return Section{
		Title: TitleTransactionSummary,
		Blocks: []Block{
			KeyValue("Total Purchase Price", money(it.Total)),
			KeyValue("Payment Method", method),
			KeyValue("Payment Status", firstNonEmpty(t.PaymentStatus, "pending")),
			KeyValue("Amount Paid", moneyPtr(t.PaymentAmount, notAvailable)),
			KeyValue("Paid On", date(t.PaidAt, notAvailable)),
			KeyValue("Signed On", date(t.SignedAt, notAvailable)),
		},
	}
}

func lastActivity(a entities.LastActivity) string {
	if a.Description == "" {
		return notAvailable
	}
	return fmt.Sprintf("%s (%s)", a.Description, timestamp(a.Timestamp))
}
