package apperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-material-trade/internal/apperr"
)

func TestFromStore(t *testing.T) {
	assert.NoError(t, apperr.FromStore(nil))

	assert.ErrorIs(t, apperr.FromStore(gorm.ErrRecordNotFound), apperr.ErrNotFound)

	var cerr *apperr.ConstraintError
	require.ErrorAs(t, apperr.FromStore(gorm.ErrForeignKeyViolated), &cerr)
	assert.ErrorIs(t, cerr, gorm.ErrForeignKeyViolated)

	require.ErrorAs(t, apperr.FromStore(gorm.ErrDuplicatedKey), &cerr)

	opaque := errors.New("connection reset")
	assert.Equal(t, opaque, apperr.FromStore(opaque))
}
