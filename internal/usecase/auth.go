package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID
	UID       string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RegisterCustomer struct {
	Name     string
	Email    string
	Password string
}

// RegisterCustomer creates the user at the identity provider and
// persists a customer row linked by the provider's subject id.
func (u Usecase) RegisterCustomer(ctx context.Context, rc RegisterCustomer) (Customer, error) {
	if rc.Name == "" || rc.Email == "" || rc.Password == "" {
		return Customer{}, fmt.Errorf("%w: name, email and password", ErrValidation)
	}

	uid, err := u.identityProvider.CreateUser(ctx, rc)
	if err != nil {
		return Customer{}, err
	}

	return u.repo.CreateCustomer(ctx, Customer{
		UID:   uid,
		Name:  rc.Name,
		Email: rc.Email,
	})
}

// ListCustomers returns every registered customer.
func (u Usecase) ListCustomers(ctx context.Context) ([]Customer, error) {
	return u.repo.ListCustomers(ctx)
}

// Login exchanges credentials for an access token.
func (u Usecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", fmt.Errorf("%w: email and password", ErrValidation)
	}
	return u.identityProvider.Login(ctx, email, password)
}

// VerifyToken is used by the auth middleware; it returns the token's
// subject.
func (u Usecase) VerifyToken(ctx context.Context, token string) (string, error) {
	return u.identityProvider.VerifyToken(ctx, token)
}
