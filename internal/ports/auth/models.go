package auth

// Claims identifica al agente de campo autenticado.
type Claims struct {
	UserID string // AgentID que queda en cada registro
	Name   string
	Role   string
}
