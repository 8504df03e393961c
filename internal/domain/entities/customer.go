package entities

import "strings"

type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

// Line formats the address as a single line, empty when nothing is known.
func (a Address) Line() string {
	cityState := strings.TrimSpace(strings.Join(nonEmpty(a.City, a.State), ", "))
	tail := strings.TrimSpace(strings.Join(nonEmpty(cityState, a.ZipCode), " "))
	return strings.Join(nonEmpty(strings.TrimSpace(a.Street), tail), ", ")
}

// Customer is the seller of the vehicle, owned by the intake collaborator.
type Customer struct {
	ID        string   `json:"id,omitempty"`
	FirstName string   `json:"firstName,omitempty"`
	LastName  string   `json:"lastName,omitempty"`
	Email     string   `json:"email,omitempty"`
	Phone     string   `json:"phone,omitempty"`
	Address   *Address `json:"address,omitempty"`
	Source    string   `json:"source,omitempty"`
}

// FullName joins first and last name, skipping blank parts.
func (c Customer) FullName() string {
	return strings.Join(nonEmpty(strings.TrimSpace(c.FirstName), strings.TrimSpace(c.LastName)), " ")
}

// ActingUser is the operator performing an action on a case.
type ActingUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
