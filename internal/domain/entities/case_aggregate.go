package entities

// CaseAggregate is a read snapshot of a case together with the records owned by
// the other collaborators. Any of the referenced records may be missing.
type CaseAggregate struct {
	Case        Case          `json:"case"`
	Customer    *Customer     `json:"customer,omitempty"`
	Vehicle     *Vehicle      `json:"vehicle,omitempty"`
	Inspection  *Inspection   `json:"inspection,omitempty"`
	Quote       *Quote        `json:"quote,omitempty"`
	Transaction *Transaction  `json:"transaction,omitempty"`
	Tracking    *TimeTracking `json:"timeTracking,omitempty"`
}

// BillOfSale returns the bill-of-sale overrides, or nil.
func (a CaseAggregate) BillOfSale() *BillOfSale {
	if a.Transaction == nil {
		return nil
	}
	return a.Transaction.BillOfSale
}
