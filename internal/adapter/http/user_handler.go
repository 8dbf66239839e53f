package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"brickvest-backend/internal/auth"
	"brickvest-backend/internal/usecase/user"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

func (h *UserHandler) Me(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Get(c.Request().Context(), p.UserID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) VerifyUser(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Verify(c.Request().Context(), p, c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) RejectUser(c echo.Context) error {
	p, err := auth.FromContext(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	dto, err := h.uc.Reject(c.Request().Context(), p, c.Param("user_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
