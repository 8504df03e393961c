package documents

import (
	"strconv"

	"vehicle_acquisition/internal/domain/entities"
)

type party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

func resolveSeller(agg entities.CaseAggregate) party {
	var bos entities.BillOfSale
	if b := agg.BillOfSale(); b != nil {
		bos = *b
	}
	var c entities.Customer
	var addr entities.Address
	if agg.Customer != nil {
		c = *agg.Customer
		if c.Address != nil {
			addr = *c.Address
		}
	}
	return party{
		Name:    firstNonEmpty(bos.SellerName, c.FullName(), notProvided),
		Address: firstNonEmpty(bos.SellerAddress, addr.Line(), notProvided),
		Phone:   firstNonEmpty(bos.SellerPhone, c.Phone, notProvided),
		Email:   firstNonEmpty(bos.SellerEmail, c.Email, notProvided),
	}
}

func resolveBuyer(agg entities.CaseAggregate, company Company) party {
	var bos entities.BillOfSale
	if b := agg.BillOfSale(); b != nil {
		bos = *b
	}
	return party{
		Name:    firstNonEmpty(bos.BuyerName, company.Name, notProvided),
		Address: firstNonEmpty(bos.BuyerAddress, company.Address, notProvided),
		Phone:   firstNonEmpty(bos.BuyerPhone, company.Phone, notProvided),
		Email:   firstNonEmpty(bos.BuyerEmail, company.Email, notProvided),
	}
}

type vehicleFacts struct {
	Year         string
	Make         string
	Model        string
	Trim         string
	VIN          string
	Mileage      string
	Color        string
	TitleStatus  string
	LicensePlate string
}

func (v vehicleFacts) Description() string {
	return firstNonEmpty(joinKnown(v.Year, v.Make, v.Model), "Vehicle")
}

func resolveVehicle(agg entities.CaseAggregate) vehicleFacts {
	var bos entities.BillOfSale
	if b := agg.BillOfSale(); b != nil {
		bos = *b
	}
	var v entities.Vehicle
	if agg.Vehicle != nil {
		v = *agg.Vehicle
	}

	year := notAvailable
	if y := firstInt(bos.VehicleYear, v.Year); y != nil {
		year = strconv.Itoa(*y)
	}
	mileage := notAvailable
	if m := firstInt(bos.VehicleMileage, v.Mileage); m != nil {
		mileage = number(*m)
	}

	return vehicleFacts{
		Year:         year,
		Make:         firstNonEmpty(bos.VehicleMake, v.Make, notAvailable),
		Model:        firstNonEmpty(bos.VehicleModel, v.Model, notAvailable),
		Trim:         firstNonEmpty(v.Trim, notAvailable),
		VIN:          firstNonEmpty(bos.VehicleVIN, v.VIN, notAvailable),
		Mileage:      mileage,
		Color:        firstNonEmpty(bos.VehicleColor, v.Color, notAvailable),
		TitleStatus:  firstNonEmpty(bos.VehicleTitleStatus, v.TitleStatus, notAvailable),
		LicensePlate: firstNonEmpty(bos.VehicleLicensePlate, v.LicensePlate, notAvailable),
	}
}

func joinKnown(parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" || p == notAvailable {
			continue
		}
		if out != "" {
			out += " "
		}
		out += p
	}
	return out
}
