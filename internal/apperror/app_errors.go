package apperror

import "errors"

// Boundary error kinds. Every command or event handled by the engine ends in
// nil or in an error that matches exactly one of these with errors.Is.
var (
	ErrIllegalCommand      = errors.New("illegal command")
	ErrCommandRejected     = errors.New("command rejected by ledger")
	ErrReconciliationFault = errors.New("reconciliation fault")
	ErrConnectivityFault   = errors.New("ledger connectivity fault")
)

var (
	ErrIllegalPlacement  = errors.New("cell is already occupied")
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrIllegalTransition = errors.New("phase transition not allowed")
	ErrSessionEnded      = errors.New("session has already ended")
	ErrSessionNotFound   = errors.New("session not found")
)
