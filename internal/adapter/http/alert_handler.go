package http

import (
	"net/http"

	mw "peerlend/internal/adapter/middleware"
	"peerlend/internal/usecase/alert"

	"github.com/labstack/echo/v4"
)

type AlertHandler struct{ uc *alert.Usecase }

func NewAlertHandler(uc *alert.Usecase) *AlertHandler { return &AlertHandler{uc: uc} }

func (h *AlertHandler) List(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	userID := c.Param("user_id")
	if userID != caller.UserID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "cannot list alerts for another user"})
	}
	dtos, err := h.uc.ListFor(c.Request().Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *AlertHandler) MarkRead(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	dto, err := h.uc.MarkRead(c.Request().Context(), c.Param("alert_id"), caller.UserID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
