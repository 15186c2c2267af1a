package domain

import "github.com/golang-jwt/jwt/v5"

// Roles reconhecidos nos claims do token.
const (
	RoleAdmin       = 1
	RoleHub         = 2
	RolePublication = 3
)

// Claims são os dados de identidade extraídos do bearer token. A emissão do
// token é responsabilidade de um serviço externo; aqui apenas validamos e
// consumimos.
type Claims struct {
	UserID     string `json:"user_id"`
	UserRoleID int    `json:"user_role_id"`
	jwt.RegisteredClaims
}

// IsAdmin indica bypass total de verificação de escopo.
func (c *Claims) IsAdmin() bool {
	return c.UserRoleID == RoleAdmin
}

// UserScope materializa as publicações e hubs acessíveis por um usuário.
type UserScope struct {
	UserID         string   `json:"user_id"`
	PublicationIDs []string `json:"publication_ids"`
	HubIDs         []string `json:"hub_ids"`
}
