package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/usecase/investment"
)

type InvestmentHandler struct{ uc *investment.Usecase }

func NewInvestmentHandler(uc *investment.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

func (h *InvestmentHandler) ListMyInvestments(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	dtos, err := h.uc.ListMine(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
