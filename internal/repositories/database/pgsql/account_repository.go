package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	portsrepo "github.com/SscSPs/accounts_movements_service/internal/core/ports/repositories"
	"github.com/SscSPs/accounts_movements_service/internal/models"
	"github.com/SscSPs/accounts_movements_service/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository reads accounts and their movements from PostgreSQL.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountReader {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountReader
var _ portsrepo.AccountReader = (*PgxAccountRepository)(nil)

// The $1 customer filter is optional: a NULL matches every customer.
const accountsInRangeFilter = `
	FROM accounts a
	WHERE ($1::bigint IS NULL OR a.customer_id = $1)
		AND EXISTS (
			SELECT 1 FROM movements m
			WHERE m.account_id = a.id AND m.date BETWEEN $2 AND $3
		)`

// FindAccountsInRange retrieves a page of accounts with movements inside [from, to],
// each carrying only its in-window movements.
func (r *PgxAccountRepository) FindAccountsInRange(ctx context.Context, page domain.PageRequest, customerID *int64, from, to time.Time) (domain.Page[domain.Account], error) {
	var (
		total     int64
		accounts  []models.Account
		movements []models.Movement
	)

	err := r.withSnapshot(ctx, func(tx pgx.Tx) error {
		countQuery := `SELECT COUNT(*)` + accountsInRangeFilter
		if err := tx.QueryRow(ctx, countQuery, customerID, from, to).Scan(&total); err != nil {
			return fmt.Errorf("failed to count accounts in range: %w", err)
		}
		if total == 0 {
			return nil
		}

		var err error
		accounts, err = r.selectAccountPage(ctx, tx, page, customerID, from, to)
		if err != nil {
			return err
		}
		if len(accounts) == 0 {
			return nil
		}

		accountIDs := make([]int64, len(accounts))
		for i, a := range accounts {
			accountIDs[i] = a.ID
		}
		movements, err = r.selectMovements(ctx, tx, accountIDs, from, to)
		return err
	})
	if err != nil {
		return domain.Page[domain.Account]{}, err
	}

	return domain.NewPage(mapping.ToDomainAccounts(accounts, movements), page, total), nil
}

func (r *PgxAccountRepository) selectAccountPage(ctx context.Context, tx pgx.Tx, page domain.PageRequest, customerID *int64, from, to time.Time) ([]models.Account, error) {
	query := `
		SELECT a.id, a.customer_id, a.account_number, a.account_type, a.initial_balance, a.actual_balance, a.status, a.created_at, a.updated_at` +
		accountsInRangeFilter + `
		ORDER BY a.id
		LIMIT $4 OFFSET $5;
	`

	rows, err := tx.Query(ctx, query, customerID, from, to, page.Size, page.Offset())
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts in range: %w", err)
	}
	defer rows.Close()

	accounts := []models.Account{}
	for rows.Next() {
		var acc models.Account
		if err := rows.Scan(
			&acc.ID,
			&acc.CustomerID,
			&acc.AccountNumber,
			&acc.AccountType,
			&acc.InitialBalance,
			&acc.ActualBalance,
			&acc.Status,
			&acc.CreatedAt,
			&acc.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

func (r *PgxAccountRepository) selectMovements(ctx context.Context, tx pgx.Tx, accountIDs []int64, from, to time.Time) ([]models.Movement, error) {
	query := `
		SELECT m.id, m.account_id, m.date, m.movement_type, m.amount, m.balance
		FROM movements m
		WHERE m.account_id = ANY($1) AND m.date BETWEEN $2 AND $3
		ORDER BY m.account_id, m.date, m.id;
	`

	rows, err := tx.Query(ctx, query, accountIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements for accounts: %w", err)
	}
	defer rows.Close()

	movements := []models.Movement{}
	for rows.Next() {
		var mv models.Movement
		if err := rows.Scan(
			&mv.ID,
			&mv.AccountID,
			&mv.Date,
			&mv.MovementType,
			&mv.Amount,
			&mv.Balance,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement row: %w", err)
		}
		movements = append(movements, mv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movement rows: %w", err)
	}

	return movements, nil
}
