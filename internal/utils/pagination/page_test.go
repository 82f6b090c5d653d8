package pagination

import (
	"testing"

	"github.com/SscSPs/accounts_movements_service/internal/apperrors"
	"github.com/SscSPs/accounts_movements_service/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestParsePageRequest(t *testing.T) {
	limits := Limits{DefaultSize: 20, MaxSize: 50}

	tests := []struct {
		name    string
		page    string
		size    string
		want    domain.PageRequest
		wantErr string
	}{
		{name: "defaults", want: domain.PageRequest{Page: 0, Size: 20}},
		{name: "explicit values", page: "3", size: "10", want: domain.PageRequest{Page: 3, Size: 10}},
		{name: "size clamped", page: "1", size: "500", want: domain.PageRequest{Page: 1, Size: 50}},
		{name: "non numeric page", page: "abc", wantErr: "invalid page value"},
		{name: "negative page", page: "-1", wantErr: "page must not be negative"},
		{name: "zero size", size: "0", wantErr: "size must be at least 1"},
		{name: "non numeric size", size: "ten", wantErr: "invalid size value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePageRequest(tt.page, tt.size, limits)
			if tt.wantErr != "" {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageRequest_ZeroLimitsUseDefaults(t *testing.T) {
	got, err := ParsePageRequest("", "1000", Limits{})

	assert.NoError(t, err)
	assert.Equal(t, domain.PageRequest{Page: 0, Size: MaxPageSize}, got)
	assert.Equal(t, Limits{DefaultSize: DefaultPageSize, MaxSize: MaxPageSize}, DefaultLimits())
}
