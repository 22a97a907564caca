package models

// LoginRequest is the body of POST /auth/login/admin.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the success body of POST /auth/login/admin.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// MeResponse is the body of GET /api/account/me.
type MeResponse struct {
	User *User `json:"user"`
}

// ClientEnvelope wraps a single client in create/update responses.
type ClientEnvelope struct {
	Client Client `json:"client"`
}

// AgentEnvelope wraps a single agent in create/update responses.
type AgentEnvelope struct {
	Agent Agent `json:"agent"`
}

// ClientList is the body of GET /client/list.
type ClientList struct {
	Clients []Client `json:"clients"`
}

// AgentList is the body of GET /agent/list.
type AgentList struct {
	Agents []Agent `json:"agents"`
}

// DeleteResult is the body of DELETE /client/:id and DELETE /agent/:id.
// Deleted is false with HTTP 200 when the backend refuses the deletion
// because the entity still has dependent contracts.
type DeleteResult struct {
	Deleted bool `json:"deleted"`
}
