package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/sales-admin/internal/validators"
	"github.com/MKhiriev/sales-admin/models"
)

type fieldType int

const (
	fieldText fieldType = iota
	fieldBool
	fieldNumber
)

type fieldDef struct {
	key   string
	label string
	typ   fieldType
	limit int
}

var clientFields = map[string][]fieldDef{
	validators.FieldIdentity: {
		{key: "first_name", label: "First name", limit: 64},
		{key: "last_name", label: "Last name", limit: 64},
		{key: "company_name", label: "Company", limit: 128},
		{key: "business", label: "Business (y/n)", typ: fieldBool, limit: 5},
		{key: "vat_number", label: "VAT number", limit: 32},
		{key: "fiscal_code", label: "Fiscal code", limit: 32},
	},
	validators.FieldAddress: {
		{key: "address", label: "Address", limit: 128},
		{key: "city", label: "City", limit: 64},
		{key: "zip", label: "ZIP", limit: 16},
		{key: "province", label: "Province", limit: 8},
	},
	validators.FieldContacts: {
		{key: "email", label: "Email", limit: 254},
		{key: "phone", label: "Phone", limit: 32},
	},
	validators.FieldAssignment: {
		{key: "agent", label: "Agent id", limit: 64},
		{key: "notes", label: "Notes", limit: 512},
	},
}

var agentFields = map[string][]fieldDef{
	validators.FieldIdentity: {
		{key: "first_name", label: "First name", limit: 64},
		{key: "last_name", label: "Last name", limit: 64},
	},
	validators.FieldContacts: {
		{key: "email", label: "Email", limit: 254},
		{key: "phone", label: "Phone", limit: 32},
		{key: "address", label: "Address", limit: 128},
		{key: "city", label: "City", limit: 64},
		{key: "zip", label: "ZIP", limit: 16},
		{key: "area", label: "Area", limit: 64},
	},
	validators.FieldPayment: {
		{key: "commission", label: "Commission %", typ: fieldNumber, limit: 8},
		{key: "iban", label: "IBAN", limit: 34},
		{key: "notes", label: "Notes", limit: 512},
	},
}

func fieldsFor(kind models.EntityKind, step string) []fieldDef {
	if kind == models.KindAgent {
		return agentFields[step]
	}
	return clientFields[step]
}

func newFieldInput(def fieldDef, value string) textinput.Model {
	in := textinput.New()
	in.CharLimit = def.limit
	in.Width = 40
	in.SetValue(value)
	return in
}

// displayValue renders a draft value into the text of its input.
func displayValue(def fieldDef, fields models.Fields) string {
	switch def.typ {
	case fieldBool:
		v, ok := fields[def.key].(bool)
		if !ok {
			return ""
		}
		if v {
			return "yes"
		}
		return "no"
	default:
		return fields.String(def.key)
	}
}

// parseField converts the text of an input into the draft value of def.
func parseField(def fieldDef, raw string) (any, error) {
	raw = strings.TrimSpace(raw)

	switch def.typ {
	case fieldBool:
		switch strings.ToLower(raw) {
		case "true", "yes", "y", "1":
			return true, nil
		case "", "false", "no", "n", "0":
			return false, nil
		default:
			return nil, fmt.Errorf("%s: answer yes or no", def.label)
		}
	case fieldNumber:
		if raw == "" {
			return float64(0), nil
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("%s: not a number", def.label)
		}
		return v, nil
	default:
		return raw, nil
	}
}
