package round

import (
	"roulette_backend/internal/model"
	"roulette_backend/internal/service/outcome"
)

// GetState - согласованный снимок раунда, оставшееся время считается сейчас
func (s *serv) GetState() model.RoundSnapshot {
	s.mtx.RLock()
	state := s.state
	s.mtx.RUnlock()

	return state.Snapshot(s.now())
}

// GetUserBets - ставки участника, roundID 0 означает текущий раунд
func (s *serv) GetUserBets(userID, roundID int64) []model.Bet {
	return s.betRepo.Bets(s.roundOrCurrent(roundID), userID)
}

// GetUserSettlement - итог участника, roundID 0 означает текущий раунд
func (s *serv) GetUserSettlement(userID, roundID int64) (model.Settlement, bool) {
	return s.settlementRepo.Get(s.roundOrCurrent(roundID), userID)
}

func (s *serv) BetTypes() []model.BetTypeInfo {
	return outcome.BetTypes()
}

func (s *serv) roundOrCurrent(roundID int64) int64 {
	if roundID != 0 {
		return roundID
	}

	s.mtx.RLock()
	defer s.mtx.RUnlock()
	return s.state.RoundID
}
