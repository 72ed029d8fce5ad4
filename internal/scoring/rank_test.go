package scoring

import (
	"math/rand"
	"testing"

	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func participant(id string, score string) *models.SessionParticipant {
	return &models.SessionParticipant{
		ID:         id,
		FinalScore: decimal.RequireFromString(score),
	}
}

func ids(participants []*models.SessionParticipant) []string {
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		out = append(out, p.ID)
	}
	return out
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank(nil))
	assert.Empty(t, Rank([]*models.SessionParticipant{}))
}

func TestRank_OrdersByScoreDescending(t *testing.T) {
	ranked := Rank([]*models.SessionParticipant{
		participant("a", "12"),
		participant("b", "40.5"),
		participant("c", "-3"),
		participant("d", "40"),
	})

	assert.Equal(t, []string{"b", "d", "a", "c"}, ids(ranked))
	for i, p := range ranked {
		require.NotNil(t, p.Position)
		assert.Equal(t, i+1, *p.Position)
	}
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	ranked := Rank([]*models.SessionParticipant{
		participant("first", "10"),
		participant("low", "2"),
		participant("second", "10"),
	})

	assert.Equal(t, []string{"first", "second", "low"}, ids(ranked))
	assert.Equal(t, 1, *ranked[0].Position)
	assert.Equal(t, 2, *ranked[1].Position)
	assert.Equal(t, 3, *ranked[2].Position)
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	input := []*models.SessionParticipant{
		participant("a", "1"),
		participant("b", "2"),
	}

	Rank(input)

	assert.Equal(t, []string{"a", "b"}, ids(input))
	assert.Nil(t, input[0].Position)
	assert.Nil(t, input[1].Position)
}

func TestRank_PositionsArePermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := rng.Intn(12) + 1
		input := make([]*models.SessionParticipant, n)
		maxScore := decimal.NewFromInt(-1)
		for i := range input {
			score := decimal.NewFromInt(int64(rng.Intn(6)))
			if score.GreaterThan(maxScore) {
				maxScore = score
			}
			input[i] = &models.SessionParticipant{ID: string(rune('a' + i)), FinalScore: score}
		}

		ranked := Rank(input)
		require.Len(t, ranked, n)

		seen := make(map[int]bool, n)
		for _, p := range ranked {
			require.NotNil(t, p.Position)
			assert.GreaterOrEqual(t, *p.Position, 1)
			assert.LessOrEqual(t, *p.Position, n)
			assert.False(t, seen[*p.Position])
			seen[*p.Position] = true
		}
		assert.True(t, ranked[0].FinalScore.Equal(maxScore))

		// The first listed participant holding the top score ranks first
		for _, p := range input {
			if p.FinalScore.Equal(maxScore) {
				assert.Equal(t, p.ID, ranked[0].ID)
				break
			}
		}
	}
}
