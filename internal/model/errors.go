package model

import "errors"

var (
	ErrValidation        = errors.New("validation failed")
	ErrPhaseClosed       = errors.New("betting is closed")
	ErrStaleRound        = errors.New("round has changed")
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrSettlement        = errors.New("settlement failed")
	ErrUnauthorized      = errors.New("unauthorized")
)

// ValidationError - некорректные параметры ставки, состояние не менялось
type ValidationError struct {
	Reason string
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Reason - короткая причина отказа для клиента
func Reason(err error) string {
	var vErr *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &vErr):
		return vErr.Reason
	case errors.Is(err, ErrPhaseClosed):
		return "Betting is closed"
	case errors.Is(err, ErrStaleRound):
		return "Round has changed"
	case errors.Is(err, ErrInsufficientFunds):
		return "Insufficient balance"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	default:
		return "Internal error"
	}
}
