package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/poultrymitra/mitra_backend/internal/apperrors"
	"github.com/poultrymitra/mitra_backend/internal/core/domain"
	portsrepo "github.com/poultrymitra/mitra_backend/internal/core/ports/repositories"
	"github.com/poultrymitra/mitra_backend/internal/models"
	"github.com/poultrymitra/mitra_backend/internal/utils/mapping"
)

const transactionColumns = `transaction_id, farmer_id, dealer_id, transaction_type, amount, transaction_date,
		category, description, created_at, created_by, last_updated_at, last_updated_by`

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a new ledger transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO ledger_transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.FarmerID,
		m.DealerID,
		m.TransactionType,
		m.Amount,
		m.TransactionDate,
		m.Category,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE transaction_id = $1;`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction "+transactionID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to scan transaction "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// ListTransactions retrieves the transactions matching q, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, q portsrepo.TransactionQuery) ([]domain.Transaction, error) {
	query, args := buildListTransactionsQuery(q)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions for dealer "+q.DealerID, err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan transactions for dealer "+q.DealerID, err)
	}
	return mapping.ToDomainTransactionSlice(ms), nil
}

// buildListTransactionsQuery renders the filtered, keyset-paginated SELECT.
func buildListTransactionsQuery(q portsrepo.TransactionQuery) (string, []any) {
	var sb strings.Builder
	args := []any{q.DealerID}
	param := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	sb.WriteString(`SELECT ` + transactionColumns + ` FROM ledger_transactions WHERE dealer_id = $1`)
	if q.FarmerID != "" {
		sb.WriteString(" AND farmer_id = " + param(q.FarmerID))
	}
	if !q.From.IsZero() {
		sb.WriteString(" AND transaction_date >= " + param(q.From))
	}
	if !q.To.IsZero() {
		sb.WriteString(" AND transaction_date <= " + param(q.To))
	}
	if q.AfterID != "" {
		date := param(q.AfterDate)
		id := param(q.AfterID)
		sb.WriteString(" AND (transaction_date, transaction_id) < (" + date + ", " + id + ")")
	}
	sb.WriteString(" ORDER BY transaction_date DESC, transaction_id DESC")
	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + param(q.Limit))
	}
	return sb.String(), args
}
