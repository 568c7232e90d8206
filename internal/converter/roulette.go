package converter

import (
	dto "roulette_backend/internal/api/dto/roulette"
	"roulette_backend/internal/model"

	"github.com/shopspring/decimal"
)

func ToPlaceBet(req dto.PlaceBetRequest) (model.BetType, *int, decimal.Decimal) {
	return model.BetType(req.BetType), req.BetNumber, req.Amount
}

func ToStateResponse(snap model.RoundSnapshot) dto.StateResponse {
	res := dto.StateResponse{
		Phase:            string(snap.Phase),
		RoundID:          snap.RoundID,
		PhaseRemainingMs: snap.PhaseRemainingMs,
		PhaseDurationMs:  snap.PhaseDurationMs,
		Outcome:          snap.Outcome,
		History:          make([]dto.HistoryEntry, 0, len(snap.History)),
	}
	if snap.Color != nil {
		c := string(*snap.Color)
		res.ColorClass = &c
	}
	for _, h := range snap.History {
		res.History = append(res.History, dto.HistoryEntry{
			RoundID:    h.RoundID,
			Outcome:    h.Outcome,
			ColorClass: string(h.Color),
		})
	}
	return res
}

func ToBets(bets []model.Bet) []dto.Bet {
	res := make([]dto.Bet, 0, len(bets))
	for _, b := range bets {
		res = append(res, toBet(b))
	}
	return res
}

func toBet(b model.Bet) dto.Bet {
	return dto.Bet{
		BetKey:    b.Key,
		BetType:   string(b.Type),
		BetNumber: b.Number,
		Amount:    b.Amount.InexactFloat64(),
	}
}

func ToBetResponse(res model.BetResult) dto.BetResponse {
	return dto.BetResponse{
		Success: true,
		RoundID: res.RoundID,
		Balance: res.Balance.InexactFloat64(),
		Bets:    ToBets(res.Bets),
	}
}

func ToSettlementResponse(s model.Settlement) dto.SettlementResponse {
	bets := make([]dto.ResolvedBet, 0, len(s.Bets))
	for _, b := range s.Bets {
		bets = append(bets, dto.ResolvedBet{
			Bet:        toBet(b.Bet),
			Won:        b.Won,
			Multiplier: b.Multiplier,
			Payout:     b.Payout.InexactFloat64(),
			Profit:     b.Profit.InexactFloat64(),
		})
	}

	return dto.SettlementResponse{
		Success:     true,
		RoundID:     s.RoundID,
		Won:         s.Won,
		TotalBet:    s.TotalBet.InexactFloat64(),
		TotalPayout: s.TotalPayout.InexactFloat64(),
		TotalProfit: s.TotalProfit.InexactFloat64(),
		Balance:     s.Balance.InexactFloat64(),
		Paid:        s.Paid,
		Bets:        bets,
	}
}

func ToBetTypesResponse(types []model.BetTypeInfo) dto.BetTypesResponse {
	res := dto.BetTypesResponse{
		Success:  true,
		BetTypes: make([]dto.BetTypeInfo, 0, len(types)),
	}
	for _, t := range types {
		res.BetTypes = append(res.BetTypes, dto.BetTypeInfo{
			Type:             string(t.Type),
			Payout:           t.Payout,
			PayoutMultiplier: t.PayoutMultiplier,
			Description:      t.Description,
		})
	}
	return res
}

func ToBalanceResponse(balance decimal.Decimal) dto.BalanceResponse {
	return dto.BalanceResponse{
		Success: true,
		Balance: balance.InexactFloat64(),
	}
}

func ToUserBetsResponse(roundID int64, bets []model.Bet) dto.UserBetsResponse {
	return dto.UserBetsResponse{
		Success: true,
		RoundID: roundID,
		Bets:    ToBets(bets),
	}
}
