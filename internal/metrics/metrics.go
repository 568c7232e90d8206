package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "roulette"

var (
	// BetsTotal - операции со ставками по типу и результату
	BetsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bets_total",
		Help:      "Bet operations by operation and result.",
	}, []string{"op", "result"})

	RoundsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rounds_settled_total",
		Help:      "Rounds that went through settlement.",
	})

	CreditRetries = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settlement_credit_retries_total",
		Help:      "Failed settlement credit attempts that were retried.",
	})

	UnpaidSettlements = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unpaid_settlements_total",
		Help:      "Settlements flagged for manual reconciliation.",
	})

	SettlementDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "settlement_duration_seconds",
		Help:      "Time spent settling one round.",
		Buckets:   prometheus.DefBuckets,
	})

	RoundID = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "round_id",
		Help:      "Current round id.",
	})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers",
		Help:      "Attached round state subscribers.",
	})
)

// BetResult - метка result для BetsTotal
func BetResult(err error) string {
	if err == nil {
		return "ok"
	}
	return "error"
}
