// Package invoice assembles proforma invoices from concluded negotiations
// and archives them in a file-backed store. Rendering is plain text; the
// surrounding application owns any PDF layout.
package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/otoz-ai/salesdesk/inventory"
	"github.com/otoz-ai/salesdesk/pricing"
)

// Seller is the issuing dealer's identity block.
type Seller struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// DefaultSeller returns the dealer identity printed on invoices when no
// override is configured.
func DefaultSeller() Seller {
	return Seller{
		Name:    "Otoz.ai",
		Address: "1-chōme-9-1 Akasaka, Minato City, Tōkyō-to 107-0052, Japan",
		Phone:   "+81-3-1234-5678",
		Email:   "sales@otoz.ai",
	}
}

// Customer carries the buyer contact fields collected by the chat flow.
type Customer struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Country         string `json:"country,omitempty"`
	PortOfDischarge string `json:"port_of_discharge,omitempty"`
}

// Proforma is one issued proforma invoice. FinalBasePrice is the negotiated
// vehicle price; Breakdown is the landed-cost decomposition computed on it.
type Proforma struct {
	Number         string            `json:"number"`
	IssuedAt       time.Time         `json:"issued_at"`
	Seller         Seller            `json:"seller"`
	Customer       Customer          `json:"customer"`
	Vehicle        inventory.Vehicle `json:"vehicle"`
	FinalBasePrice int64             `json:"final_base_price"`
	Breakdown      pricing.Breakdown `json:"breakdown"`
}

// Build assembles a Proforma. The breakdown must have been computed on the
// negotiated final price; a mismatch is a caller bug and is rejected.
func Build(seller Seller, customer Customer, vehicle inventory.Vehicle, finalPrice int64, breakdown pricing.Breakdown, issuedAt time.Time) (Proforma, error) {
	if customer.Name == "" {
		return Proforma{}, ErrMissingCustomer
	}
	if err := vehicle.Validate(); err != nil {
		return Proforma{}, err
	}
	if finalPrice <= 0 || breakdown.BasePrice != finalPrice {
		return Proforma{}, fmt.Errorf("%w: final %d, breakdown base %d",
			ErrPriceMismatch, finalPrice, breakdown.BasePrice)
	}

	return Proforma{
		Number:         fmt.Sprintf("PI-%s-%s", vehicle.ID, issuedAt.Format("20060102")),
		IssuedAt:       issuedAt,
		Seller:         seller,
		Customer:       customer,
		Vehicle:        vehicle,
		FinalBasePrice: finalPrice,
		Breakdown:      breakdown,
	}, nil
}

// Render produces the plain-text invoice body.
func (p Proforma) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "PROFORMA INVOICE %s\n", p.Number)
	fmt.Fprintf(&b, "Issued: %s\n\n", p.IssuedAt.Format("2006-01-02"))

	fmt.Fprintf(&b, "Seller: %s\n%s\nPhone: %s  Email: %s\n\n",
		p.Seller.Name, p.Seller.Address, p.Seller.Phone, p.Seller.Email)

	fmt.Fprintf(&b, "Customer: %s\n", p.Customer.Name)
	if p.Customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", p.Customer.Email)
	}
	if p.Customer.Country != "" {
		fmt.Fprintf(&b, "Destination: %s, %s\n", p.Customer.PortOfDischarge, p.Customer.Country)
	}

	fmt.Fprintf(&b, "\nVehicle: %s (ID: %s)\n", p.Vehicle.DisplayName(), p.Vehicle.ID)
	fmt.Fprintf(&b, "Color: %s, Transmission: %s\n\n", p.Vehicle.Color, p.Vehicle.Transmission)

	fmt.Fprintf(&b, "Pricing (%s)\n", p.Breakdown.Incoterm)
	fmt.Fprintf(&b, "- Vehicle price: %s\n", pricing.FormatYen(p.Breakdown.BasePrice))
	if p.Breakdown.DomesticTransport > 0 {
		fmt.Fprintf(&b, "- Domestic transport: %s\n", pricing.FormatYen(p.Breakdown.DomesticTransport))
	}
	if p.Breakdown.FreightCost > 0 {
		fmt.Fprintf(&b, "- Freight: %s\n", pricing.FormatYen(p.Breakdown.FreightCost))
	}
	if p.Breakdown.Insurance > 0 {
		fmt.Fprintf(&b, "- Insurance: %s\n", pricing.FormatYen(p.Breakdown.Insurance))
	}
	fmt.Fprintf(&b, "\nTotal Price: %s %s\n", pricing.FormatYen(p.Breakdown.TotalPrice), p.Breakdown.Incoterm)

	return b.String()
}

// Key is the archive key the store files this invoice under.
func (p Proforma) Key() string {
	return p.Number + ".json"
}
