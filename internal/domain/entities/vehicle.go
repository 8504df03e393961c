package entities

const (
	TitleStatusClean = "clean"

	LoanStatusStillHasLoan = "still-has-loan"
)

// Vehicle is the vehicle under acquisition.
type Vehicle struct {
	ID             string   `json:"id,omitempty"`
	Year           *int     `json:"year,omitempty"`
	Make           string   `json:"make,omitempty"`
	Model          string   `json:"model,omitempty"`
	Trim           string   `json:"trim,omitempty"`
	VIN            string   `json:"vin,omitempty"`
	Mileage        *int     `json:"mileage,omitempty"`
	Color          string   `json:"color,omitempty"`
	LicensePlate   string   `json:"licensePlate,omitempty"`
	TitleStatus    string   `json:"titleStatus,omitempty"`
	LoanStatus     string   `json:"loanStatus,omitempty"`
	LoanAmount     *float64 `json:"loanAmount,omitempty"`
	LoanLender     string   `json:"loanLender,omitempty"`
	EstimatedValue *float64 `json:"estimatedValue,omitempty"`
}
