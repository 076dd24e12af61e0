package pgrepo

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funketh/shinobu-bot/internal/domain"
)

func TestConvertErr(t *testing.T) {
	cases := []struct {
		name    string
		in      error
		wantIs  error
		wantNil bool
	}{
		{name: "nil passthrough", in: nil, wantNil: true},
		{name: "no rows", in: pgx.ErrNoRows, wantIs: domain.ErrRecordNotFound},
		{
			name:   "unique violation",
			in:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "waifus_user_id_character_id_key"},
			wantIs: domain.ErrDuplicateKey,
		},
		{name: "anything else", in: errors.New("connection reset"), wantIs: domain.ErrUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := convertErr(tc.in, "test %s", "op")
			if tc.wantNil {
				require.NoError(t, got)
				return
			}
			require.ErrorIs(t, got, tc.wantIs)
			// Контекст операции попадает в сообщение.
			assert.Contains(t, got.Error(), "[repository/test op]")
		})
	}
}

func TestIsCheckViolationErr(t *testing.T) {
	err := &pgconn.PgError{Code: checkViolationCode, ConstraintName: balanceCheckConstraint}

	assert.True(t, isCheckViolationErr(err, balanceCheckConstraint))
	assert.False(t, isCheckViolationErr(err, "other_constraint"))
	assert.False(t, isCheckViolationErr(errors.New("plain"), balanceCheckConstraint))

	// Код другой - ограничение то же.
	unique := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: balanceCheckConstraint}
	assert.False(t, isCheckViolationErr(unique, balanceCheckConstraint))
}

func TestIsUniqueViolationOn(t *testing.T) {
	err := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: waifuOwnerConstraint}

	assert.True(t, isUniqueViolationOn(err, waifuOwnerConstraint))
	assert.False(t, isUniqueViolationOn(err, "other_constraint"))
	assert.False(t, isUniqueViolationOn(errors.New("plain"), waifuOwnerConstraint))
}
