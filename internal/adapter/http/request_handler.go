package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/usecase/request"
)

type RequestHandler struct{ uc *request.Usecase }

func NewRequestHandler(uc *request.Usecase) *RequestHandler { return &RequestHandler{uc: uc} }

type submitInvestmentReq struct {
	Amount float64 `json:"amount" validate:"required,money"`
}

func (h *RequestHandler) SubmitInvestment(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	var req submitInvestmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.SubmitInvestment(c.Request().Context(), p, request.SubmitInvestmentInput{
		DealID: c.Param("deal_id"),
		Amount: decimal.NewFromFloat(req.Amount),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// SubmitRepayment takes no body: the amount is always the full payoff.
func (h *RequestHandler) SubmitRepayment(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.SubmitRepayment(c.Request().Context(), p, c.Param("deal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *RequestHandler) ListMyRequests(c echo.Context) error {
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

func (h *RequestHandler) ListPending(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	dtos, err := h.uc.ListPending(c.Request().Context(), p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
