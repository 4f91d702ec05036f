package render

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"taskboard/internal/domain"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	priorityStyle = cellStyle.Align(lipgloss.Right)
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	emptyStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#6B7280"))
)

// EmptyMessage is shown instead of a table when there are no tasks
const EmptyMessage = "No tasks."

// Table renders tasks as a bordered terminal table
func Table(tasks []*domain.Task) string {
	if len(tasks) == 0 {
		return emptyStyle.Render(EmptyMessage)
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			strconv.FormatInt(task.ID, 10),
			strconv.FormatInt(task.Priority, 10),
			task.Description,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("ID", "PRIORITY", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col <= 1:
				return priorityStyle
			default:
				return cellStyle
			}
		})

	return t.String()
}
