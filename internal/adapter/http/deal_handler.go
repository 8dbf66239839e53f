package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/usecase/deal"
)

type DealHandler struct{ uc *deal.Usecase }

func NewDealHandler(uc *deal.Usecase) *DealHandler { return &DealHandler{uc: uc} }

type createDealReq struct {
	Title            string  `json:"title"             validate:"required,min=5"`
	Description      string  `json:"description"`
	LoanAmount       float64 `json:"loan_amount"       validate:"required,money"`
	InterestRate     float64 `json:"interest_rate"     validate:"gte=0,dec2"`
	TermMonths       int     `json:"term_months"       validate:"required,gte=1,lte=360"`
	LTV              float64 `json:"ltv"               validate:"gte=1,lte=100"`
	PropertyType     string  `json:"property_type"     validate:"required"`
	PropertyLocation string  `json:"property_location" validate:"required,min=5"`
}

func (h *DealHandler) CreateDeal(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	var req createDealReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), p, deal.CreateDealInput{
		Title:            req.Title,
		Description:      req.Description,
		LoanAmount:       decimal.NewFromFloat(req.LoanAmount),
		InterestRate:     decimal.NewFromFloat(req.InterestRate),
		TermMonths:       req.TermMonths,
		LTV:              decimal.NewFromFloat(req.LTV),
		PropertyType:     req.PropertyType,
		PropertyLocation: req.PropertyLocation,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DealHandler) GetDeal(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("deal_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *DealHandler) ListOpenDeals(c echo.Context) error {
	dtos, err := h.uc.ListOpen(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *DealHandler) ListMyDeals(c echo.Context) error {
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

type decideReq struct {
	Decision string `json:"decision" validate:"required,oneof=approve reject"`
}

func (h *DealHandler) DecideDeal(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Decide(c.Request().Context(), p, c.Param("deal_id"), deal.Decision(req.Decision))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
