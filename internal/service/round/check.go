package round

import (
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// checkOpen - ставки принимаются только в фазе betting и только для текущего раунда.
// Вызывается под gate на чтение, поэтому фаза не изменится до конца операции
func (s *serv) checkOpen(roundID int64) error {
	s.mtx.RLock()
	phase := s.state.Phase
	current := s.state.RoundID
	s.mtx.RUnlock()

	if phase != model.PhaseBetting {
		return model.ErrPhaseClosed
	}
	if roundID != current {
		return model.ErrStaleRound
	}
	return nil
}

// validateAmount - сумма больше нуля и не больше двух знаков после запятой
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return model.NewValidationError("Amount must be positive")
	}
	if !amount.Equal(amount.Round(2)) {
		return model.NewValidationError("Amount must have at most 2 decimal places")
	}
	return nil
}
