package seed

import "github.com/thenoetrevino/tablero/internal/models"

// Default returns the built-in starter board
func Default() []models.Column {
	return []models.Column{
		{
			ID:    "todo",
			Title: "To Do",
			Tasks: []models.Card{
				{ID: "task-1", Title: "Analyze requirements", Description: "Understand the project needs", Labels: []string{"planning", "critical"}},
				{ID: "task-2", Title: "Design UI mockups", Description: "Create visual designs for the app", Labels: []string{"design"}},
			},
		},
		{
			ID:    "inprogress",
			Title: "In Progress",
			Tasks: []models.Card{
				{ID: "task-3", Title: "Develop feature X", Description: "Implement the main functionality", Labels: []string{"development", "backend"}},
			},
		},
		{
			ID:    "done",
			Title: "Done",
			Tasks: []models.Card{
				{ID: "task-4", Title: "Setup project environment", Description: "Initialize the repository and tools", Labels: []string{"setup"}},
				{ID: "task-5", Title: "Write initial documentation", Description: "Draft the README file", Labels: []string{"docs"}},
			},
		},
	}
}
