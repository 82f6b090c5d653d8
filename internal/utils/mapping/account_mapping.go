package mapping

import (
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	"github.com/SscSPs/accounts_movements_service/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account without movements
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:             m.ID,
		CustomerID:     m.CustomerID,
		AccountNumber:  m.AccountNumber,
		AccountType:    domain.AccountType(m.AccountType),
		InitialBalance: m.InitialBalance,
		ActualBalance:  m.ActualBalance,
		Status:         m.Status,
		Movements:      []domain.Movement{},
	}
}

// ToDomainMovement converts a model Movement to a domain Movement
func ToDomainMovement(m models.Movement) domain.Movement {
	return domain.Movement{
		ID:           m.ID,
		AccountID:    m.AccountID,
		Date:         m.Date,
		MovementType: domain.MovementType(m.MovementType),
		Amount:       m.Amount,
		Balance:      m.Balance,
	}
}

// ToDomainAccounts converts model accounts and attaches each movement to the
// account it belongs to. Movements for unknown accounts are dropped.
func ToDomainAccounts(accounts []models.Account, movements []models.Movement) []domain.Account {
	ds := make([]domain.Account, len(accounts))
	index := make(map[int64]int, len(accounts))
	for i, m := range accounts {
		ds[i] = ToDomainAccount(m)
		index[m.ID] = i
	}
	for _, mv := range movements {
		if i, ok := index[mv.AccountID]; ok {
			ds[i].Movements = append(ds[i].Movements, ToDomainMovement(mv))
		}
	}
	return ds
}
