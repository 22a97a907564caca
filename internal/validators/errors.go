package validators

import (
	"errors"

	"github.com/MKhiriev/sales-admin/internal/app"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrClientNameRequired = errors.New(app.MsgClientNameRequired)
	ErrFirstNameRequired  = errors.New(app.MsgFirstNameRequired)
	ErrLastNameRequired   = errors.New(app.MsgLastNameRequired)
	ErrAddressRequired    = errors.New(app.MsgAddressRequired)
	ErrCityRequired       = errors.New(app.MsgCityRequired)
	ErrZipRequired        = errors.New(app.MsgZipRequired)
	ErrEmailRequired      = errors.New(app.MsgEmailRequired)
	ErrPhoneRequired      = errors.New(app.MsgPhoneRequired)
	ErrAgentRequired      = errors.New(app.MsgAgentRequired)
	ErrInvalidCommission  = errors.New(app.MsgInvalidCommission)
)
