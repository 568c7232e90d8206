package app

import (
	"log/slog"

	"roulette_backend/internal/repository"
)

// reportUnpaid - выводит в лог выплаты, которые остались без зачисления.
// Вызывается при остановке, чтобы их можно было сверить вручную
func reportUnpaid(log *slog.Logger, repo repository.SettlementRepository) int {
	unpaid := repo.Unpaid()
	if len(unpaid) == 0 {
		return 0
	}

	log.Error("settlements left unpaid", slog.Int("count", len(unpaid)))
	for _, u := range unpaid {
		log.Error("unpaid settlement",
			slog.String("id", u.ID.String()),
			slog.Int64("round_id", u.RoundID),
			slog.Int64("user_id", u.UserID),
			slog.String("amount", u.Amount.String()),
			slog.String("reason", u.Reason),
			slog.Time("flagged_at", u.FlaggedAt),
		)
	}
	return len(unpaid)
}
