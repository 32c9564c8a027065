package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize checks that principal may act on dealerID's ledger, optionally
// narrowed to a single farmerID.
// Admins may do anything, a dealer only its own ledger, and a farmer only its
// own account (farmerID must be set).
func (s *BaseService) Authorize(ctx context.Context, principal domain.Principal, dealerID, farmerID string) error {
	switch principal.Role {
	case domain.RoleAdmin:
		return nil
	case domain.RoleDealer:
		if dealerID != "" && principal.UserID == dealerID {
			return nil
		}
	case domain.RoleFarmer:
		if farmerID != "" && principal.UserID == farmerID {
			return nil
		}
	}

	s.LogDebug(ctx, "Access denied",
		slog.String("user_id", principal.UserID),
		slog.String("role", string(principal.Role)),
		slog.String("dealer_id", dealerID),
		slog.String("farmer_id", farmerID))
	return fmt.Errorf("%w: %s %q may not access this ledger", apperrors.ErrForbidden, principal.Role, principal.UserID)
}
