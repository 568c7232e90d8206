package history_repo

import (
	"context"
	"encoding/json"
	"time"

	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"
	repoModel "roulette_backend/internal/repository/history_repo/model"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "balance_history"
	colID        = "id"
	colUserID    = "user_id"
	colGame      = "game"
	colRoundID   = "round_id"
	colPayload   = "payload"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewHistoryRepository(dbc *pgxpool.Pool) repository.HistoryRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// AddEntry - добавляет запись в журнал пользователя
func (r *repo) AddEntry(ctx context.Context, userID int64, record model.HistoryRecord) error {
	payload, err := json.Marshal(toEntry(record))
	if err != nil {
		return err
	}

	query := sq.Insert(table).
		Columns(colID, colUserID, colGame, colRoundID, colPayload, colCreatedAt).
		Values(uuid.New(), userID, record.Game, record.RoundID, payload, time.Now()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// Trim - оставляет только keep последних записей пользователя
func (r *repo) Trim(ctx context.Context, userID int64, keep int) error {
	newest := sq.Select(colID).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(keep))

	newestSQL, newestArgs, err := newest.ToSql()
	if err != nil {
		return err
	}

	query := sq.Delete(table).
		Where(sq.Eq{colUserID: userID}).
		Where(sq.Expr(colID+" NOT IN ("+newestSQL+")", newestArgs...)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func toEntry(record model.HistoryRecord) repoModel.Entry {
	bets := make([]repoModel.Bet, len(record.Bets))
	for i, b := range record.Bets {
		bets[i] = repoModel.Bet{
			BetKey:     b.Key,
			BetType:    string(b.Type),
			BetNumber:  b.Number,
			BetAmount:  b.Amount,
			Won:        b.Won,
			Multiplier: b.Multiplier,
			Payout:     b.Payout,
			Profit:     b.Profit,
		}
	}

	return repoModel.Entry{
		Game:         record.Game,
		RoundID:      record.RoundID,
		Bets:         bets,
		Result:       record.Outcome,
		ResultColor:  string(record.Color),
		Won:          record.Won,
		BetAmount:    record.TotalBet,
		TotalPayout:  record.TotalPayout,
		Profit:       record.Profit,
		BalanceAfter: record.BalanceAfter,
	}
}
