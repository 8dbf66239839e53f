package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/domain/deal"
	"brickvest-backend/internal/domain/investment"
	"brickvest-backend/internal/domain/ledger"
	"brickvest-backend/internal/domain/pending"
	"brickvest-backend/internal/domain/user"
	"brickvest-backend/internal/domain/wallet"
	"brickvest-backend/internal/usecase/payment"
)

// writeError maps domain errors to HTTP codes. One place, so every handler
// surfaces the taxonomy consistently.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, auth.ErrForbidden):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "forbidden"})
	case errors.Is(err, deal.ErrNotFound),
		errors.Is(err, pending.ErrNotFound),
		errors.Is(err, ledger.ErrNotFound),
		errors.Is(err, wallet.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, pending.ErrInvalidState),
		errors.Is(err, ledger.ErrInvalidState),
		errors.Is(err, deal.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, wallet.ErrInsufficientBalance),
		errors.Is(err, investment.ErrNoInvestments):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, pending.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, payment.ErrBelowMinimum),
		errors.Is(err, payment.ErrInvalidMetadata):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
