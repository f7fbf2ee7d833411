package risk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run(`score is probability times severity`, func(t *testing.T) {
		for p := 1; p <= 5; p++ {
			for s := 1; s <= 5; s++ {
				require.Equal(t, p*s, Score(p, s))
			}
		}
	})

	t.Run(`tier boundaries`, func(t *testing.T) {
		require.Equal(t, TierLow, GetTier(1))
		require.Equal(t, TierLow, GetTier(4))
		require.Equal(t, TierMedium, GetTier(5))
		require.Equal(t, TierMedium, GetTier(9))
		require.Equal(t, TierHigh, GetTier(10))
		require.Equal(t, TierHigh, GetTier(14))
		require.Equal(t, TierCritical, GetTier(15))
		require.Equal(t, TierCritical, GetTier(25))
	})

	t.Run(`probability 3 severity 4 is high`, func(t *testing.T) {
		score := Score(3, 4)
		require.Equal(t, 12, score)
		require.Equal(t, TierHigh, GetTier(score))
	})
}
