package http

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	mw "peerlend/internal/adapter/middleware"
	loanDomain "peerlend/internal/domain/loan"
	userDomain "peerlend/internal/domain/user"
	"peerlend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

// DocumentStore persists uploaded identity documents and returns the public
// path they are served under.
type DocumentStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

type LoanHandler struct {
	uc    *loan.Usecase
	store DocumentStore
}

func NewLoanHandler(uc *loan.Usecase, store DocumentStore) *LoanHandler {
	return &LoanHandler{uc: uc, store: store}
}

type createLoanReq struct {
	PrincipalAmount float64 `json:"principal_amount" validate:"required,gt=0,dec2"`
	InterestRate    float64 `json:"interest_rate" validate:"required,gt=0"`
	InterestType    string  `json:"interest_type" validate:"required,oneof=simple compound"`
	DueDate         string  `json:"due_date" validate:"required"`
}

// parseDueDate accepts RFC3339 or a bare calendar date.
func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	if caller.Role != userDomain.RoleLender {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only lenders can create loans"})
	}

	var (
		req      createLoanReq
		document string
	)
	if isMultipart(c) {
		principal, err := strconv.ParseFloat(c.FormValue("principal_amount"), 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid principal_amount"})
		}
		rate, err := strconv.ParseFloat(c.FormValue("interest_rate"), 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid interest_rate"})
		}
		req = createLoanReq{
			PrincipalAmount: principal,
			InterestRate:    rate,
			InterestType:    c.FormValue("interest_type"),
			DueDate:         c.FormValue("due_date"),
		}
		// store the document before touching the ledger
		if fh, err := c.FormFile("documentImage"); err == nil {
			path, err := h.store.Save(fh)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store document"})
			}
			document = path
		}
	} else if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	due, err := parseDueDate(req.DueDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "due_date must be RFC3339 or YYYY-MM-DD"})
	}

	dto, err := h.uc.Create(c.Request().Context(), caller.UserID, loan.CreateLoanInput{
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
		InterestType:    req.InterestType,
		DueDate:         due,
		DocumentImage:   document,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

type applyReq struct {
	LoanID        string `form:"loan_id" validate:"required,hex32"`
	AadhaarNumber string `form:"aadhaar_number" validate:"required,aadhaar"`
	PANNumber     string `form:"pan_number" validate:"required,pan"`
}

func (h *LoanHandler) Apply(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	if caller.Role != userDomain.RoleBorrower {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "only borrowers can apply for loans"})
	}

	req := applyReq{
		LoanID:        c.FormValue("loan_id"),
		AadhaarNumber: c.FormValue("aadhaar_number"),
		PANNumber:     c.FormValue("pan_number"),
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	// a failed upload aborts the application before the ledger is touched
	var document string
	if fh, err := c.FormFile("documentImage"); err == nil {
		path, err := h.store.Save(fh)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to store document"})
		}
		document = path
	}

	dto, err := h.uc.Apply(c.Request().Context(), loan.ApplyInput{
		LoanID:        req.LoanID,
		BorrowerID:    caller.UserID,
		AadhaarNumber: req.AadhaarNumber,
		PANNumber:     req.PANNumber,
		DocumentImage: document,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type paymentReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
}

func (h *LoanHandler) RecordPayment(c echo.Context) error {
	var req paymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RecordPayment(c.Request().Context(), c.Param("loan_id"), req.Amount)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type statusReq struct {
	Status string `json:"status" validate:"required,oneof=pending active completed defaulted"`
}

func (h *LoanHandler) UpdateStatus(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("loan_id"), caller.UserID, loanDomain.Status(req.Status))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) Delete(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	if err := h.uc.Delete(c.Request().Context(), c.Param("loan_id"), caller.UserID); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "loan deleted successfully"})
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListMine only serves the caller's own ledger view.
func (h *LoanHandler) ListMine(c echo.Context) error {
	caller, ok := mw.UserFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing authenticated user"})
	}
	userID := c.Param("user_id")
	if userID != caller.UserID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "cannot list loans for another user"})
	}
	dtos, err := h.uc.ListMine(c.Request().Context(), userID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *LoanHandler) ListUnassigned(c echo.Context) error {
	dtos, err := h.uc.ListUnassigned(c.Request().Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
