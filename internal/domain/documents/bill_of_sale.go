package documents

import (
	"fmt"

	"vehicle_acquisition/internal/domain/entities"
)

const (
	TitleBOSParties   = "1. Parties"
	TitleBOSVehicle   = "2. Vehicle Description"
	TitleBOSOdometer  = "3. Odometer Disclosure"
	TitleBOSPrice     = "4. Purchase Price"
	TitleBOSPayment   = "5. Method of Payment"
	TitleBOSTaxes     = "6. Taxes and Fees"
	TitleBOSTitle     = "7. Title and Liens"
	TitleBOSCondition = "8. Condition of Vehicle"
	TitleBOSTransfer  = "9. Transfer of Ownership"
	TitleBOSLiability = "10. Release of Liability"
	TitleBOSSignature = "11. Signatures"
)

// billOfSaleSections builds the eleven clauses of the legal document body.
func (a *Assembler) billOfSaleSections(agg entities.CaseAggregate) []Section {
	var bos entities.BillOfSale
	if b := agg.BillOfSale(); b != nil {
		bos = *b
	}
	seller := resolveSeller(agg)
	buyer := resolveBuyer(agg, a.company)
	v := resolveVehicle(agg)
	it := Itemize(&bos)

	saleDate := date(bos.SaleDate, date(ptrTime(a.now()), notAvailable))

	mileage := v.Mileage
	if mileage != notAvailable {
		mileage += " miles"
	}

	price := []Block{
		KeyValue("Base Vehicle Price", money(it.Base)),
		KeyValue("Repairs Adjustment", deduction(it.Adjustment)),
		KeyValue("Loan Payoff", deduction(it.LoanPayoff)),
		KeyValue("Total Purchase Price", money(it.Total)),
	}

	liens := "Seller warrants that the vehicle is free of all liens and encumbrances and that Seller holds clear title."
	if it.LoanPayoff.IsPositive() {
		liens = fmt.Sprintf("Buyer will remit %s directly to the lienholder to satisfy the outstanding loan. "+
			"Seller warrants there are no other liens or encumbrances on the vehicle.", money(it.LoanPayoff))
	}

	sections := []Section{
		{Title: TitleBOSParties, Blocks: []Block{
			KeyValue("Seller Name", seller.Name),
			KeyValue("Seller Address", seller.Address),
			KeyValue("Seller Phone", seller.Phone),
			KeyValue("Seller Email", seller.Email),
			KeyValue("Buyer Name", buyer.Name),
			KeyValue("Buyer Address", buyer.Address),
			KeyValue("Buyer Phone", buyer.Phone),
			KeyValue("Buyer Email", buyer.Email),
		}},
		{Title: TitleBOSVehicle, Blocks: []Block{
			KeyValue("Year", v.Year),
			KeyValue("Make", v.Make),
			KeyValue("Model", v.Model),
			KeyValue("VIN", v.VIN),
			KeyValue("Color", v.Color),
			KeyValue("License Plate", v.LicensePlate),
			KeyValue("Title Status", v.TitleStatus),
		}},
		{Title: TitleBOSOdometer, Blocks: []Block{
			KeyValue("Odometer Reading", mileage+" "+OdometerSuffix(bos.OdometerAccurate)),
			Paragraph("Seller certifies that, to the best of Seller's knowledge, the odometer reading above " +
				"reflects the mileage of the vehicle as indicated."),
		}},
		{Title: TitleBOSPrice, Blocks: price},
		{Title: TitleBOSPayment, Blocks: []Block{
			Checkboxes("Payment Method", PaymentCheckboxes(bos.PaymentMethod)...),
		}},
		{Title: TitleBOSTaxes, Blocks: []Block{
			Checkboxes("Taxes and Fees Paid By", TaxCheckboxes(bos.TaxesPaidBy)...),
			Paragraph("Registration, title transfer and sales taxes are the responsibility of the party checked above."),
		}},
		{Title: TitleBOSTitle, Blocks: []Block{Paragraph(liens)}},
		{Title: TitleBOSCondition, Blocks: []Block{
			Paragraph("The vehicle is sold \"AS IS\" with no warranties, express or implied, except as stated in this bill of sale."),
		}},
		{Title: TitleBOSTransfer, Blocks: []Block{
			KeyValue("Date of Sale", saleDate),
			Paragraph("Upon receipt of the total purchase price, Seller transfers all rights, title and interest in the vehicle to Buyer."),
		}},
		{Title: TitleBOSLiability, Blocks: []Block{
			Paragraph("Seller is released from liability for the vehicle from the date and time of sale. " +
				"Buyer assumes responsibility for any tickets, tolls or claims arising afterwards."),
		}},
		{Title: TitleBOSSignature, Blocks: []Block{
			KeyValue("Seller Signature", signatureBar),
			KeyValue("Seller Printed Name", seller.Name),
			KeyValue("Date", signatureBar),
			KeyValue("Buyer Signature", signatureBar),
			KeyValue("Buyer Printed Name", buyer.Name),
			KeyValue("Date", signatureBar),
		}},
	}
	if bos.Notes != "" {
		for i := range sections {
			if sections[i].Title == TitleBOSTransfer {
				sections[i].Blocks = append(sections[i].Blocks, Paragraph("Notes: "+bos.Notes))
			}
		}
	}
	return sections
}
