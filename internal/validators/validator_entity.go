package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/sales-admin/models"
)

// EntityValidator validates [models.Client] and [models.Agent] records.
type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate implements [Validator]. It returns the first failed rule.
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Client:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		return v.validateClient(ctx, *value, fields...)

	case models.Agent:
		return v.validateAgent(ctx, value, fields...)
	case *models.Agent:
		return v.validateAgent(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateClient(_ context.Context, c models.Client, fields ...string) error {
	if len(fields) == 0 {
		fields = ClientSteps
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			hasPersonName := !blank(c.FirstName) && !blank(c.LastName)
			if !hasPersonName && blank(c.CompanyName) {
				return ErrClientNameRequired
			}
		case FieldAddress:
			switch {
			case blank(c.Address):
				return ErrAddressRequired
			case blank(c.City):
				return ErrCityRequired
			case blank(c.Zip):
				return ErrZipRequired
			}
		case FieldContacts:
			if err := validateContacts(c.Email, c.Phone); err != nil {
				return err
			}
		case FieldAssignment:
			if blank(c.Agent.String()) {
				return ErrAgentRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateAgent(_ context.Context, a models.Agent, fields ...string) error {
	if len(fields) == 0 {
		fields = AgentSteps
	}

	for _, f := range fields {
		switch f {
		case FieldIdentity:
			if blank(a.FirstName) {
				return ErrFirstNameRequired
			}
			if blank(a.LastName) {
				return ErrLastNameRequired
			}
		case FieldContacts:
			if err := validateContacts(a.Email, a.Phone); err != nil {
				return err
			}
		case FieldPayment:
			if a.Commission < 0 || a.Commission > 100 {
				return ErrInvalidCommission
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateContacts(email, phone string) error {
	if blank(email) {
		return ErrEmailRequired
	}
	if blank(phone) {
		return ErrPhoneRequired
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
