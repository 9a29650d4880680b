package auth

import "context"

// AuthService exchanges employee credentials for access tokens. Every
// authenticated route expects a token minted here.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
