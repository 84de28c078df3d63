package service

import (
	"context"

	"github.com/MKhiriev/rhoconnect-go/models"
	"github.com/MKhiriev/rhoconnect-go/resource"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.AppVersion
}

type AuthService interface {
	// SeedUser creates the user unless the login is already taken.
	SeedUser(ctx context.Context, login, password string) error
	// Login checks the password of an existing user.
	Login(ctx context.Context, login, password string) (models.User, error)
	// Authenticate is the authenticate callback handed to the adapter
	// configuration. It reads "login" and "password" from credentials.
	Authenticate(ctx context.Context, credentials models.Credentials) bool
}

// ProductService is the "Product" resource exposed to RhoConnect.
type ProductService interface {
	resource.Querier
	resource.CreateReceiver
	resource.UpdateReceiver
	resource.DeleteReceiver
}
