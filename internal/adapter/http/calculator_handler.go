package http

import (
	"net/http"

	"peerlend/internal/usecase/calculator"

	"github.com/labstack/echo/v4"
)

// CalculatorHandler serves the stateless advisory calculators.
type CalculatorHandler struct{}

func NewCalculatorHandler() *CalculatorHandler { return &CalculatorHandler{} }

func (h *CalculatorHandler) EMI(c echo.Context) error {
	var req calculator.EMIInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := calculator.EMI(req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CalculatorHandler) Eligibility(c echo.Context) error {
	var req calculator.EligibilityInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := calculator.Eligibility(req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *CalculatorHandler) CreditScore(c echo.Context) error {
	var req calculator.CreditScoreInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	score, err := calculator.CreditScore(req)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int{"score": score})
}
