package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MintSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_engine_mint_submitted_total",
			Help: "Total number of mint ledger calls submitted",
		},
		[]string{"token_type"},
	)

	TransferSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_engine_transfer_submitted_total",
			Help: "Total number of transfer ledger calls submitted",
		},
		[]string{"token_type"},
	)

	LedgerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_engine_ledger_errors_total",
			Help: "Total number of failed ledger calls by error kind",
		},
		[]string{"kind"},
	)

	ReconciledRows = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mint_engine_reconciled_rows_total",
			Help: "Total number of PENDING rows resolved by the reconciler",
		},
		[]string{"resolution"},
	)

	ActiveRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mint_engine_active_requests",
		Help: "Number of mint requests currently held by the single-flight guard",
	})

	RequestsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mint_engine_requests_completed_total",
		Help: "Total number of mint requests driven to terminal success",
	})

	RequestsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mint_engine_requests_failed_total",
		Help: "Total number of processing attempts that ended in failure",
	})
)
