package interchange

import (
	"strconv"
	"strings"
)

// ParseCSV reads games from comma separated text. The first line is a header
// row matched case-insensitively; each following line is split on commas
// positionally, with no quoting or escaping. Fields a row leaves absent, and
// numeric cells that do not start with a non-zero integer, take the import
// defaults. Rows without a title are dropped.
func ParseCSV(text string) []Game {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return []Game{}
	}

	headers := splitCells(lines[0])
	games := make([]Game, 0, len(lines)-1)

	for _, line := range lines[1:] {
		values := splitCells(line)
		var game Game

		for idx, header := range headers {
			value := ""
			if idx < len(values) {
				value = values[idx]
			}

			switch strings.ToLower(header) {
			case "title":
				game.Title = value
			case "description":
				game.Description = value
			case "minplayers", "min_players":
				game.MinPlayers = parseIntOr(value, DefaultMinPlayers)
			case "maxplayers", "max_players":
				game.MaxPlayers = parseIntOr(value, DefaultMaxPlayers)
			case "duration", "duration_minutes":
				game.DurationMinutes = parseIntOr(value, DefaultDurationMinutes)
			case "age", "age_min":
				game.AgeMin = parseIntOr(value, DefaultAgeMin)
			case "complexity":
				game.Complexity = parseIntOr(value, DefaultComplexity)
			}
		}

		if game.Title != "" {
			games = append(games, game.WithDefaults())
		}
	}

	return games
}

func splitCells(line string) []string {
	cells := strings.Split(strings.TrimRight(line, "\r"), ",")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// parseIntOr reads the leading integer of s, returning def when there is
// none or it is zero
func parseIntOr(s string, def int) int {
	n, ok := leadingInt(s)
	if !ok || n == 0 {
		return def
	}
	return n
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
