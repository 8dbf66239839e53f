package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/usecase/decision"
)

type DecisionHandler struct{ uc *decision.Usecase }

func NewDecisionHandler(uc *decision.Usecase) *DecisionHandler { return &DecisionHandler{uc: uc} }

func (h *DecisionHandler) DecidePending(c echo.Context) error {
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

	dto, err := h.uc.Decide(c.Request().Context(), p, decision.DecideInput{
		PendingID: c.Param("pending_id"),
		Decision:  decision.Decision(req.Decision),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
