package services

import "context"

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main.
type ServiceContainer struct {
	Ledger      LedgerSvcFacade
	Batch       BatchSvcFacade
	Translation TranslationSvc
}

// TranslationSvc resolves UI text keys into a supported language.
type TranslationSvc interface {
	Translate(ctx context.Context, key string, lang string) (string, error)
}
