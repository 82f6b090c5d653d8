package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMovement_SignedAmount(t *testing.T) {
	tests := []struct {
		name     string
		movement domain.Movement
		want     decimal.Decimal
	}{
		{
			name:     "deposit keeps its sign",
			movement: domain.Movement{MovementType: domain.Deposit, Amount: decimal.NewFromInt(100)},
			want:     decimal.NewFromInt(100),
		},
		{
			name:     "withdrawal is negated",
			movement: domain.Movement{MovementType: domain.Withdrawal, Amount: decimal.NewFromInt(50)},
			want:     decimal.NewFromInt(-50),
		},
		{
			name:     "zero withdrawal stays zero",
			movement: domain.Movement{MovementType: domain.Withdrawal, Amount: decimal.Zero},
			want:     decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.movement.SignedAmount()), "got %s", tt.movement.SignedAmount())
		})
	}
}

func TestAccount_SortedMovements(t *testing.T) {
	day := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	account := domain.Account{
		Movements: []domain.Movement{
			{ID: 3, Date: day.Add(2 * time.Hour)},
			{ID: 2, Date: day},
			{ID: 1, Date: day},
			{ID: 4, Date: day.Add(-time.Hour)},
		},
	}

	sorted := account.SortedMovements()

	ids := make([]int64, 0, len(sorted))
	for _, m := range sorted {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int64{4, 1, 2, 3}, ids)
	// the account's own slice is left untouched
	assert.Equal(t, int64(3), account.Movements[0].ID)
}

func TestAccount_NetMovement(t *testing.T) {
	account := domain.Account{
		Movements: []domain.Movement{
			{MovementType: domain.Deposit, Amount: decimal.NewFromInt(100)},
			{MovementType: domain.Withdrawal, Amount: decimal.NewFromInt(50)},
			{MovementType: domain.Deposit, Amount: decimal.RequireFromString("0.25")},
		},
	}

	assert.Equal(t, "50.25", account.NetMovement().String())
	assert.True(t, domain.Account{}.NetMovement().IsZero())
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		name string
		page domain.Page[int]
		want int
	}{
		{name: "empty", page: domain.EmptyPage[int](domain.PageRequest{Size: 10}), want: 0},
		{name: "exact fit", page: domain.NewPage([]int{1}, domain.PageRequest{Size: 10}, 20), want: 2},
		{name: "partial last page", page: domain.NewPage([]int{1}, domain.PageRequest{Size: 10}, 21), want: 3},
		{name: "unsized", page: domain.NewPage([]int{1}, domain.PageRequest{}, 5), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.TotalPages())
		})
	}
}

func TestNewPage_NilContent(t *testing.T) {
	page := domain.NewPage[domain.PlainMovementReport](nil, domain.PageRequest{Page: 2, Size: 5}, 0)

	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
	assert.Equal(t, 10, page.Pageable.Offset())
}
