package validators

// Field groups used to scope validation. Each group is also a wizard step.
const (
	// FieldIdentity covers the name of a client or agent.
	FieldIdentity = "identity"

	// FieldAddress covers address, city and ZIP code.
	FieldAddress = "address"

	// FieldContacts covers email and phone.
	FieldContacts = "contacts"

	// FieldAssignment covers the agent a client is assigned to.
	FieldAssignment = "assignment"

	// FieldPayment covers the commission and bank data of an agent.
	FieldPayment = "payment"
)

// ClientSteps lists the field groups of a client in wizard order.
var ClientSteps = []string{FieldIdentity, FieldAddress, FieldContacts, FieldAssignment}

// AgentSteps lists the field groups of an agent in wizard order.
var AgentSteps = []string{FieldIdentity, FieldContacts, FieldPayment}
