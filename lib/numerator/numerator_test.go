package numerator

import (
	"testing"

	"moc-tools-backend/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFormat(t *testing.T) {
	t.Run("номер дополняется нулями до пяти знаков", func(t *testing.T) {
		require.Equal(t, "MOC-2026-00001", Format(2026, 1))
		require.Equal(t, "MOC-2026-00042", Format(2026, 42))
	})
	t.Run("длинный номер не обрезается", func(t *testing.T) {
		require.Equal(t, "MOC-2026-123456", Format(2026, 123456))
	})
}

func TestSaveErr(t *testing.T) {
	t.Run("гонка за первый номер года дает конфликт версий", func(t *testing.T) {
		err := saveErr(gorm.ErrDuplicatedKey)
		require.True(t, errors.Is(err, models.ErrConcurrentModification))
	})
	t.Run("прочие ошибки сохраняются", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := saveErr(cause)
		require.True(t, errors.Is(err, cause))
		require.False(t, errors.Is(err, models.ErrConcurrentModification))
	})
}
