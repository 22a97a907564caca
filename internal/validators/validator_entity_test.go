// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/sales-admin/models"
)

func validClient() models.Client {
	return models.Client{
		FirstName: "Mario",
		LastName:  "Rossi",
		Address:   "Via Roma 1",
		City:      "Milano",
		Zip:       "20100",
		Email:     "mario@example.com",
		Phone:     "+39 02 000000",
		Agent:     "7",
	}
}

func validAgent() models.Agent {
	return models.Agent{
		FirstName:  "Luca",
		LastName:   "Bianchi",
		Email:      "luca@example.com",
		Phone:      "+39 06 000000",
		Commission: 10,
	}
}

func TestEntityValidator_Client(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *models.Client)
		want   error
	}{
		{name: "valid person", mutate: func(*models.Client) {}},
		{name: "valid company without person name", mutate: func(c *models.Client) {
			c.FirstName, c.LastName, c.CompanyName = "", "", "Acme Srl"
		}},
		{name: "first name only", mutate: func(c *models.Client) { c.LastName = "" }, want: ErrClientNameRequired},
		{name: "no name at all", mutate: func(c *models.Client) { c.FirstName, c.LastName = "", "" }, want: ErrClientNameRequired},
		{name: "blank address", mutate: func(c *models.Client) { c.Address = "   " }, want: ErrAddressRequired},
		{name: "no city", mutate: func(c *models.Client) { c.City = "" }, want: ErrCityRequired},
		{name: "no zip", mutate: func(c *models.Client) { c.Zip = "" }, want: ErrZipRequired},
		{name: "no email", mutate: func(c *models.Client) { c.Email = "" }, want: ErrEmailRequired},
		{name: "no phone", mutate: func(c *models.Client) { c.Phone = "" }, want: ErrPhoneRequired},
		{name: "no agent", mutate: func(c *models.Client) { c.Agent = "" }, want: ErrAgentRequired},
	}

	v := NewEntityValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClient()
			tt.mutate(&c)

			err := v.Validate(context.Background(), c)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEntityValidator_Agent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *models.Agent)
		want   error
	}{
		{name: "valid", mutate: func(*models.Agent) {}},
		{name: "no first name", mutate: func(a *models.Agent) { a.FirstName = "" }, want: ErrFirstNameRequired},
		{name: "no last name", mutate: func(a *models.Agent) { a.LastName = "" }, want: ErrLastNameRequired},
		{name: "no email", mutate: func(a *models.Agent) { a.Email = "" }, want: ErrEmailRequired},
		{name: "no phone", mutate: func(a *models.Agent) { a.Phone = "" }, want: ErrPhoneRequired},
		{name: "negative commission", mutate: func(a *models.Agent) { a.Commission = -1 }, want: ErrInvalidCommission},
	}

	v := NewEntityValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAgent()
			tt.mutate(&a)

			err := v.Validate(context.Background(), &a)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEntityValidator_FieldScoping(t *testing.T) {
	v := NewEntityValidator()
	c := models.Client{CompanyName: "Acme Srl"}

	assert.NoError(t, v.Validate(context.Background(), c, FieldIdentity))
	assert.ErrorIs(t, v.Validate(context.Background(), c, FieldIdentity, FieldContacts), ErrEmailRequired)
	assert.ErrorIs(t, v.Validate(context.Background(), c, "nope"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), validAgent(), FieldAssignment), ErrUnknownField)
}

func TestEntityValidator_UnsupportedType(t *testing.T) {
	err := NewEntityValidator().Validate(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
