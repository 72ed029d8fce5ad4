package discord

import (
	"fmt"
	"strings"

	"github.com/SamSam-01/Gamebrary/internal/models"
	"github.com/shopspring/decimal"
)

// parseScores reads "name=score" pairs separated by commas or semicolons.
// A colon works in place of the equals sign.
func parseScores(text string) (map[string]decimal.Decimal, error) {
	entries := strings.FieldsFunc(text, func(r rune) bool { return r == ',' || r == ';' })
	if len(entries) == 0 {
		return nil, inputError("Give at least one score, e.g. Alice=12, Bob=9.5")
	}

	scores := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		sep := strings.LastIndexAny(entry, "=:")
		if sep < 0 {
			return nil, inputError(fmt.Sprintf("%q is not in name=score form", strings.TrimSpace(entry)))
		}

		name := strings.TrimSpace(entry[:sep])
		if name == "" {
			return nil, inputError(fmt.Sprintf("%q is missing a player name", strings.TrimSpace(entry)))
		}

		score, err := decimal.NewFromString(strings.TrimSpace(entry[sep+1:]))
		if err != nil {
			return nil, inputError(fmt.Sprintf("%q is not a number", strings.TrimSpace(entry[sep+1:])))
		}

		key := strings.ToLower(name)
		if _, dup := scores[key]; dup {
			return nil, inputError(fmt.Sprintf("%s is listed twice", name))
		}
		scores[key] = score
	}
	return scores, nil
}

// resolveScores maps lower-cased player names, or participant IDs, onto the
// session's participant IDs
func resolveScores(standings *models.Standings, byName map[string]decimal.Decimal) (map[string]decimal.Decimal, error) {
	scores := make(map[string]decimal.Decimal, len(byName))
	for name, score := range byName {
		var matched []*models.StandingEntry
		for _, entry := range standings.Entries {
			if strings.ToLower(entry.ParticipantID) == name || strings.ToLower(entry.Name) == name {
				matched = append(matched, entry)
			}
		}

		switch len(matched) {
		case 0:
			return nil, inputError(fmt.Sprintf("No player named %s in this session", name))
		case 1:
			scores[matched[0].ParticipantID] = score
		default:
			return nil, inputError(fmt.Sprintf("More than one player is named %s; use their participant ID", name))
		}
	}
	return scores, nil
}
