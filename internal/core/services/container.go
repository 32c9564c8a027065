package services

import (
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	portssvc "github.com/poultrymitra/mitra_backend/internal/core/ports/services"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// translator may be nil, in which case the translation endpoint is not served.
func NewServiceContainer(repos portsrepo.RepositoryProvider, policy retry.Policy, recorder AggregationRecorder, translator portssvc.TranslationSvc) *portssvc.ServiceContainer {
	ledgerOpts := []LedgerOption{WithLedgerRetryPolicy(policy)}
	if recorder != nil {
		ledgerOpts = append(ledgerOpts, WithAggregationRecorder(recorder))
	}

	return &portssvc.ServiceContainer{
		Ledger:      NewLedgerService(repos.TransactionRepo, ledgerOpts...),
		Batch:       NewBatchService(repos.BatchRepo),
		Translation: translator,
	}
}
