package server

import (
	"errors"
	"log"

	"github.com/labstack/echo/v4"

	"github.com/soundvault/soundvault/internal/usecase"
)

type Res struct {
	Data    interface{} `json:"data"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// errJSON maps each core error kind to a status. Unexpected faults are
// reported generically; backend detail stays in the server log.
func errJSON(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return ctx.JSON(400, map[string]string{"error": err.Error()})
	case errors.Is(err, usecase.ErrUnsupportedMedia):
		return ctx.JSON(415, map[string]string{"error": err.Error()})
	case errors.Is(err, usecase.ErrNotFound),
		errors.Is(err, usecase.ErrStorageNotFound):
		return ctx.JSON(404, map[string]string{"error": err.Error()})
	default:
		log.Printf("[Server] internal error: %v", err)
		return ctx.JSON(500, map[string]string{"error": "internal server error"})
	}
}
