// Package scoring ranks session participants by their final scores.
package scoring

import (
	"slices"

	"github.com/SamSam-01/Gamebrary/internal/models"
)

// Rank returns copies of the participants ordered by final score, highest
// first, each with Position set to its 1-based index in that order. Tied
// scores keep their input order and get distinct consecutive positions.
// The input slice and its participants are not modified.
func Rank(participants []*models.SessionParticipant) []*models.SessionParticipant {
	ranked := make([]*models.SessionParticipant, 0, len(participants))
	for _, p := range participants {
		if p == nil {
			continue
		}
		clone := *p
		ranked = append(ranked, &clone)
	}

	slices.SortStableFunc(ranked, func(a, b *models.SessionParticipant) int {
		return b.FinalScore.Cmp(a.FinalScore)
	})

	for i, p := range ranked {
		position := i + 1
		p.Position = &position
	}
	return ranked
}
