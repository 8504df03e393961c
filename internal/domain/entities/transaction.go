package entities

import "time"

// BillOfSale carries the document-level overrides entered during paperwork.
// Every field is optional; the underlying records fill the gaps.
type BillOfSale struct {
	SellerName     string `json:"sellerName,omitempty"`
	SellerAddress  string `json:"sellerAddress,omitempty"`
	SellerPhone    string `json:"sellerPhone,omitempty"`
	SellerEmail    string `json:"sellerEmail,omitempty"`
	SellerIDNumber string `json:"sellerIdNumber,omitempty"`

	BuyerName    string `json:"buyerName,omitempty"`
	BuyerAddress string `json:"buyerAddress,omitempty"`
	BuyerPhone   string `json:"buyerPhone,omitempty"`
	BuyerEmail   string `json:"buyerEmail,omitempty"`

	VehicleYear         *int   `json:"vehicleYear,omitempty"`
	VehicleMake         string `json:"vehicleMake,omitempty"`
	VehicleModel        string `json:"vehicleModel,omitempty"`
	VehicleVIN          string `json:"vehicleVin,omitempty"`
	VehicleMileage      *int   `json:"vehicleMileage,omitempty"`
	VehicleTitleStatus  string `json:"vehicleTitleStatus,omitempty"`
	VehicleLicensePlate string `json:"vehicleLicensePlate,omitempty"`
	VehicleColor        string `json:"vehicleColor,omitempty"`

	SalePrice         *float64 `json:"salePrice,omitempty"`
	BaseVehiclePrice  *float64 `json:"baseVehiclePrice,omitempty"`
	RepairsAdjustment *float64 `json:"repairsAdjustment,omitempty"`
	LoanPayoff        *float64 `json:"loanPayoff,omitempty"`
	PaymentMethod     string   `json:"paymentMethod,omitempty"`
	TaxesPaidBy       string   `json:"taxesPaidBy,omitempty"`
	OdometerAccurate  bool     `json:"odometerAccurate"`

	SaleDate *time.Time `json:"saleDate,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// Transaction is the paperwork/payment record of a case.
type Transaction struct {
	ID            string      `json:"id,omitempty"`
	BillOfSale    *BillOfSale `json:"billOfSale,omitempty"`
	PaymentStatus string      `json:"paymentStatus,omitempty"`
	PaymentAmount *float64    `json:"paymentAmount,omitempty"`
	PaidAt        *time.Time  `json:"paidAt,omitempty"`
	SignedAt      *time.Time  `json:"signedAt,omitempty"`
}
