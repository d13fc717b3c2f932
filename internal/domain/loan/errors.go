package loan

import "errors"

var (
	ErrNotFound          = errors.New("loan not found")
	ErrAlreadyAssigned   = errors.New("loan is already assigned to a borrower")
	ErrOwnLoan           = errors.New("lender cannot apply for their own loan")
	ErrInvalidAmount     = errors.New("invalid payment amount")
	ErrOverpayment       = errors.New("payment would exceed the total repayable amount")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotLender         = errors.New("only the lender may perform this operation")
	ErrHasBorrower       = errors.New("cannot delete a loan that has been assigned to a borrower")
	ErrInvalidTerms      = errors.New("invalid loan terms")
	ErrInvalidAadhaar    = errors.New("aadhaar number must be exactly 12 digits")
	ErrInvalidPAN        = errors.New("pan number must match AAAAA9999A")
)
