package user_repo

import (
	"context"
	"errors"

	"roulette_backend/internal/model"
	"roulette_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	table      = "users"
	colID      = "id"
	colBalance = "balance"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetBalance - получение баланса пользователя по его ID.
// Для неизвестного пользователя баланс нулевой
func (r *repo) GetBalance(ctx context.Context, id int64) (decimal.Decimal, error) {
	query := sq.Select(colBalance + "::text").
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}

// Debit - списание суммы, если ее хватает на балансе.
// Возвращает баланс после списания или model.ErrInsufficientFunds
func (r *repo) Debit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	query := sq.Update(table).
		Set(colBalance, sq.Expr(colBalance+" - ?", amount.String())).
		Where(sq.Eq{colID: id}).
		Where(sq.GtOrEq{colBalance: amount.String()}).
		Suffix("RETURNING " + colBalance + "::text").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		// Строки нет - либо пользователя нет, либо денег не хватает
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, model.ErrInsufficientFunds
		}
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}

// Credit - зачисление суммы. Если записи нет, создается новая
func (r *repo) Credit(ctx context.Context, id int64, amount decimal.Decimal) (decimal.Decimal, error) {
	query := sq.Insert(table).
		Columns(colID, colBalance).
		Values(id, amount.String()).
		Suffix("ON CONFLICT (" + colID + ") DO UPDATE SET " + colBalance + " = " + table + "." + colBalance + " + EXCLUDED." + colBalance).
		Suffix("RETURNING " + colBalance + "::text").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&raw)
	if err != nil {
		return decimal.Zero, err
	}

	return decimal.NewFromString(raw)
}
