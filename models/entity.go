package models

import (
	"errors"
	"fmt"
)

// EntityKind names one of the entity families edited through a draft.
type EntityKind string

const (
	// KindClient is a customer of the business.
	KindClient EntityKind = "client"
	// KindAgent is a sales agent that clients are assigned to.
	KindAgent EntityKind = "agent"
)

// ErrUnknownEntityKind is returned for a kind other than client or agent.
var ErrUnknownEntityKind = errors.New("unknown entity kind")

// Kinds lists every supported entity kind.
var Kinds = []EntityKind{KindClient, KindAgent}

// ParseEntityKind converts s into an EntityKind.
func ParseEntityKind(s string) (EntityKind, error) {
	switch EntityKind(s) {
	case KindClient, KindAgent:
		return EntityKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEntityKind, s)
	}
}

// String implements fmt.Stringer.
func (k EntityKind) String() string {
	return string(k)
}

// Plural returns the collection key used by list responses
// ("clients", "agents").
func (k EntityKind) Plural() string {
	return string(k) + "s"
}

// Identified is implemented by every entity record.
type Identified interface {
	EntityID() ID
}

// Client is a customer record. Every field except ID is always encoded so
// an update can clear a value or switch a flag off.
type Client struct {
	ID          ID     `json:"id,omitempty"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	// Business marks a company (true) or a private person (false).
	Business   bool   `json:"business"`
	VATNumber  string `json:"vat_number"`
	FiscalCode string `json:"fiscal_code"`
	Address    string `json:"address"`
	City       string `json:"city"`
	Zip        string `json:"zip"`
	Province   string `json:"province"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	// Agent is the assigned sales agent.
	Agent  ID     `json:"agent"`
	Notes  string `json:"notes"`
	Hidden bool   `json:"hidden"`
}

// EntityID implements Identified.
func (c Client) EntityID() ID { return c.ID }

// DisplayName returns the company name for businesses and the full name
// otherwise.
func (c Client) DisplayName() string {
	if c.CompanyName != "" && (c.Business || c.FirstName == "" && c.LastName == "") {
		return c.CompanyName
	}
	return joinName(c.FirstName, c.LastName)
}

// Agent is a sales agent record.
type Agent struct {
	ID         ID      `json:"id,omitempty"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	Zip        string  `json:"zip"`
	Area       string  `json:"area"`
	IBAN       string  `json:"iban"`
	Commission float64 `json:"commission"`
	Notes      string  `json:"notes"`
	Hidden     bool    `json:"hidden"`
}

// EntityID implements Identified.
func (a Agent) EntityID() ID { return a.ID }

// DisplayName returns the full name of the agent.
func (a Agent) DisplayName() string {
	return joinName(a.FirstName, a.LastName)
}

// RemoveByID returns items without the element whose id matches. The input
// slice is not modified.
func RemoveByID[T Identified](items []T, id ID) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if item.EntityID() == id {
			continue
		}
		out = append(out, item)
	}
	return out
}

func joinName(first, last string) string {
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}
