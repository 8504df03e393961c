// Package outbound normalizes a case aggregate into the flat record posted to
// the automation webhook. The consumer rejects records with missing keys, so
// every field is always present and defaulted ("" / null / 0).
package outbound

import (
	"time"

	"vehicle_acquisition/internal/domain/documents"
	"vehicle_acquisition/internal/domain/entities"
	"vehicle_acquisition/internal/domain/risk"
)

const Source = "vehicle-acquisition"

type Party struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Vehicle struct {
	Year           *int     `json:"year"`
	Make           string   `json:"make"`
	Model          string   `json:"model"`
	Trim           string   `json:"trim"`
	VIN            string   `json:"vin"`
	Mileage        *int     `json:"mileage"`
	Color          string   `json:"color"`
	LicensePlate   string   `json:"license_plate"`
	TitleStatus    string   `json:"title_status"`
	LoanStatus     string   `json:"loan_status"`
	LoanAmount     float64  `json:"loan_amount"`
	EstimatedValue *float64 `json:"estimated_value"`
}

type Transaction struct {
	BasePrice         float64    `json:"base_price"`
	RepairsAdjustment float64    `json:"repairs_adjustment"`
	LoanPayoff        float64    `json:"loan_payoff"`
	TotalPrice        float64    `json:"total_price"`
	PaymentMethod     string     `json:"payment_method"`
	TaxesPaidBy       string     `json:"taxes_paid_by"`
	PaymentStatus     string     `json:"payment_status"`
	OdometerAccurate  bool       `json:"odometer_accurate"`
	SaleDate          *time.Time `json:"sale_date"`
}

type Inspection struct {
	InspectorName       string     `json:"inspector_name"`
	OverallRating       *float64   `json:"overall_rating"`
	CompletedAt         *time.Time `json:"completed_at"`
	SectionCount        int        `json:"section_count"`
	SafetyIssueCount    int        `json:"safety_issue_count"`
	CriticalSafetyCount int        `json:"critical_safety_count"`
	MaintenanceCount    int        `json:"maintenance_count"`
}

type Quote struct {
	OfferAmount   *float64 `json:"offer_amount"`
	Status        string   `json:"status"`
	TotalCodes    int      `json:"total_codes"`
	CriticalCodes int      `json:"critical_codes"`
	RiskScore     int      `json:"risk_score"`
	RiskLevel     string   `json:"risk_level"`
	RiskFactors   []string `json:"risk_factors"`
}

type PDFPackage struct {
	URL          string `json:"url"`
	DocumentType string `json:"document_type"`
	Available    bool   `json:"available"`
}

type Metadata struct {
	CaseID       string    `json:"case_id"`
	CurrentStage int       `json:"current_stage"`
	StageName    string    `json:"stage_name"`
	Status       string    `json:"status"`
	SentBy       string    `json:"sent_by"`
	SentByEmail  string    `json:"sent_by_email"`
	GeneratedAt  time.Time `json:"generated_at"`
	Source       string    `json:"source"`
}

// Package is the WebhookPackage: built on demand, sent once, not retained.
type Package struct {
	Buyer       Party       `json:"buyer"`
	Seller      Party       `json:"seller"`
	Vehicle     Vehicle     `json:"vehicle"`
	Transaction Transaction `json:"transaction"`
	Inspection  Inspection  `json:"inspection"`
	Quote       Quote       `json:"quote"`
	PDFPackage  PDFPackage  `json:"pdf_package"`
	Metadata    Metadata    `json:"metadata"`
}

// Builder holds the buying company defaults for the buyer block.
type Builder struct {
	company documents.Company
	now     func() time.Time
}

func NewBuilder(company documents.Company, now func() time.Time) *Builder {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Builder{company: company, now: now}
}

// Build is a pure transform of its inputs (plus the builder clock).
func (b *Builder) Build(agg entities.CaseAggregate, user entities.ActingUser, documentURL string) Package {
	var bos entities.BillOfSale
	if p := agg.BillOfSale(); p != nil {
		bos = *p
	}
	it := documents.Itemize(&bos)

	return Package{
		Buyer:       b.buyer(bos, user),
		Seller:      seller(agg, bos),
		Vehicle:     vehicle(agg.Vehicle),
		Transaction: transaction(agg.Transaction, bos, it),
		Inspection:  inspection(agg.Inspection),
		Quote:       quote(agg),
		PDFPackage: PDFPackage{
			URL:          documentURL,
			DocumentType: string(documents.KindCompletePackage),
			Available:    documentURL != "",
		},
		Metadata: Metadata{
			CaseID:       agg.Case.ID,
			CurrentStage: int(agg.Case.CurrentStage),
			StageName:    agg.Case.CurrentStage.Name(),
			Status:       string(agg.Case.Status),
			SentBy:       user.Name,
			SentByEmail:  user.Email,
			GeneratedAt:  b.now(),
			Source:       Source,
		},
	}
}

func (b *Builder) buyer(bos entities.BillOfSale, user entities.ActingUser) Party {
	return Party{
		Name:    first(bos.BuyerName, b.company.Name, user.Name),
		Email:   first(bos.BuyerEmail, b.company.Email, user.Email),
		Phone:   first(bos.BuyerPhone, b.company.Phone),
		Address: first(bos.BuyerAddress, b.company.Address),
	}
}

func seller(agg entities.CaseAggregate, bos entities.BillOfSale) Party {
	var c entities.Customer
	var addr entities.Address
	if agg.Customer != nil {
		c = *agg.Customer
		if c.Address != nil {
			addr = *c.Address
		}
	}
	return Party{
		Name:    first(bos.SellerName, c.FullName()),
		Email:   first(bos.SellerEmail, c.Email),
		Phone:   first(bos.SellerPhone, c.Phone),
		Address: first(bos.SellerAddress, addr.Line()),
	}
}

func vehicle(v *entities.Vehicle) Vehicle {
	if v == nil {
		return Vehicle{}
	}
	out := Vehicle{
		Year:           v.Year,
		Make:           v.Make,
		Model:          v.Model,
		Trim:           v.Trim,
		VIN:            v.VIN,
		Mileage:        v.Mileage,
		Color:          v.Color,
		LicensePlate:   v.LicensePlate,
		TitleStatus:    v.TitleStatus,
		LoanStatus:     v.LoanStatus,
		EstimatedValue: v.EstimatedValue,
	}
	if v.LoanAmount != nil {
		out.LoanAmount = *v.LoanAmount
	}
	return out
}

func transaction(t *entities.Transaction, bos entities.BillOfSale, it documents.Itemization) Transaction {
	out := Transaction{
		BasePrice:         it.Base.InexactFloat64(),
		RepairsAdjustment: it.Adjustment.InexactFloat64(),
		LoanPayoff:        it.LoanPayoff.InexactFloat64(),
		TotalPrice:        it.Total.InexactFloat64(),
		PaymentMethod:     bos.PaymentMethod,
		TaxesPaidBy:       string(documents.ClassifyTaxesPaidBy(bos.TaxesPaidBy)),
		OdometerAccurate:  bos.OdometerAccurate,
		SaleDate:          bos.SaleDate,
	}
	if t != nil {
		out.PaymentStatus = t.PaymentStatus
	}
	return out
}

func inspection(i *entities.Inspection) Inspection {
	if i == nil {
		return Inspection{}
	}
	return Inspection{
		InspectorName:       i.InspectorName,
		OverallRating:       i.OverallRating,
		CompletedAt:         i.CompletedAt,
		SectionCount:        len(i.Sections),
		SafetyIssueCount:    len(i.SafetyIssues),
		CriticalSafetyCount: i.CriticalSafetyIssues(),
		MaintenanceCount:    len(i.MaintenanceItems),
	}
}

func quote(agg entities.CaseAggregate) Quote {
	a := risk.Assess(agg.Vehicle, agg.Inspection, agg.Quote)
	out := Quote{
		RiskScore:   a.Score,
		RiskLevel:   string(a.Level),
		RiskFactors: a.Factors,
	}
	if q := agg.Quote; q != nil {
		out.OfferAmount = q.OfferAmount
		out.Status = string(q.Status)
		obd := documents.SummarizeOBD2(q.OBD2Scan)
		out.TotalCodes = obd.Total
		out.CriticalCodes = obd.Critical
	}
	return out
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
