package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/soundvault/soundvault/internal/usecase"
)

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

type RegisterCustomerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	c, err := s.server.RegisterCustomer(ctx.Request().Context(), usecase.RegisterCustomer{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errJSON(ctx, err)
	}

	return ctx.JSON(201, Res{Data: Customer{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}})
}

func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.server.ListCustomers(ctx.Request().Context())
	if err != nil {
		return errJSON(ctx, err)
	}
	if len(customers) == 0 {
		return ctx.NoContent(204)
	}

	list := make([]Customer, 0, len(customers))
	for _, c := range customers {
		list = append(list, Customer{
			ID:        c.ID.String(),
			Name:      c.Name,
			Email:     c.Email,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	return ctx.JSON(200, Res{Data: list})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	}
	if err := s.validator.Struct(req); err != nil {
		return ctx.JSON(422, map[string]string{"error": err.Error()})
	}

	token, err := s.server.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		return ctx.JSON(401, map[string]string{"error": "invalid credentials"})
	}

	return ctx.JSON(200, map[string]string{"token": token})
}
