package ledger

import (
	"context"
	"fmt"

	"roulette_backend/internal/model"
)

// RecordHistory - запись в журнал и обрезка до последних historyLimit записей
func (s *serv) RecordHistory(ctx context.Context, userID int64, record model.HistoryRecord) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.historyRepo.AddEntry(txCtx, userID, record); err != nil {
			return err
		}
		return s.historyRepo.Trim(txCtx, userID, historyLimit)
	})
	if err != nil {
		return fmt.Errorf("record history: %w", err)
	}
	return nil
}
