package domain

import "github.com/golang-jwt/jwt/v5"

// Perfis aceitos nos endpoints de disparo
const (
	RoleAdmin    = 1
	RoleOperator = 2
)

var roleNames = map[string]int{
	"admin":    RoleAdmin,
	"operator": RoleOperator,
}

// RoleID converte o nome do perfil no identificador gravado no token
func RoleID(name string) (int, bool) {
	id, ok := roleNames[name]
	return id, ok
}

// Claims identifica quem disparou uma execução manual
type Claims struct {
	Operator string `json:"operator"`
	RoleID   int    `json:"role_id"`
	jwt.RegisteredClaims
}
