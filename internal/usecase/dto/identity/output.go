package identitydto

import "github.com/oplata-app/escrow-service/internal/domain"

type LoginOutput struct {
	User  *domain.User
	Token string
}
