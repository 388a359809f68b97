package utils

import "github.com/MrSnakeDoc/devhub/internal/logger"

func CreateTable(title string, headers []string, rows [][]string) {
	if title != "" {
		logger.Info("%s", title)
	}

	table := logger.CreateTable(headers)

	for _, row := range rows {
		err := table.Append(row)
		if err != nil {
			logger.LogError("Error appending to table: %v", err)
			return
		}
	}

	err := table.Render()
	if err != nil {
		logger.LogError("Error rendering table: %v", err)
		return
	}
}

// Truncate shortens s to max runes, ending with "..." when cut.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 3 || len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
