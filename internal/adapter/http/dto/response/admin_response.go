package response

import (
	"time"

	"nishad_gateway/internal/domain/entities"
)

type AdminResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SessionResponse is returned by login and refresh. Tokens travel in
// HttpOnly cookies; the access token is also echoed for API clients.
type SessionResponse struct {
	Admin           AdminResponse `json:"admin"`
	AccessToken     string        `json:"accessToken"`
	AccessExpiresAt time.Time     `json:"accessExpiresAt"`
}

func FromAdmin(a entities.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, Email: a.Email, Name: a.Name}
}

func FromSession(a entities.Admin, pair entities.TokenPair) SessionResponse {
	return SessionResponse{
		Admin:           FromAdmin(a),
		AccessToken:     pair.AccessToken,
		AccessExpiresAt: pair.AccessExpiresAt,
	}
}
