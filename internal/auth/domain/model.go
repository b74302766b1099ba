package domain

import "github.com/golang-jwt/jwt/v4"

// AdminSubject is the only identity the service issues tokens for.
const AdminSubject = "admin"

// Claims is the payload of an issued token.
type Claims struct {
	jwt.RegisteredClaims
}

type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"pw"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
