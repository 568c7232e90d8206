package ledger

import (
	"context"
	"errors"
	"fmt"

	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

// GetBalance - текущий баланс, для неизвестного пользователя ноль
func (s *serv) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	balance, err := s.userRepo.GetBalance(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

// Debit - списание суммы ставки
func (s *serv) Debit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, model.NewValidationError("Amount must be positive")
	}

	var balance decimal.Decimal
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		balance, err = s.userRepo.Debit(txCtx, userID, amount)
		return err
	})
	if err != nil {
		if errors.Is(err, model.ErrInsufficientFunds) {
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("debit: %w", err)
	}
	return balance, nil
}

// Credit - зачисление суммы (возврат ставки или выигрыш)
func (s *serv) Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, model.NewValidationError("Amount must be positive")
	}

	var balance decimal.Decimal
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		balance, err = s.userRepo.Credit(txCtx, userID, amount)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("credit: %w", err)
	}
	return balance, nil
}
