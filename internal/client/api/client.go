package api

import (
	"context"

	"github.com/arifsetiawan/womshop/internal/client/models"
)

// ExpiresInMins is the token lifetime requested on login.
const ExpiresInMins = 60

// LoginResponse is the payload returned by POST /auth/login. The user
// fields arrive inline next to the tokens.
type LoginResponse struct {
	models.User
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// ProductPage is the payload returned by GET /products.
type ProductPage struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// Client is the remote API surface used by the session manager and loaders.
type Client interface {
	Login(ctx context.Context, username, password string) (*LoginResponse, error)
	FetchProducts(ctx context.Context, limit, skip int) (*ProductPage, error)
	FetchProductByID(ctx context.Context, id int) (*models.Product, error)
	Close() error
}
