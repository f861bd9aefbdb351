package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as claims do token emitido para a conta de analista. O
// serviço não cadastra usuários: existe uma única conta, provisionada via
// configuração, com acesso ao dashboard.
type Claims struct {
	Username string
	jwt.RegisteredClaims
}
