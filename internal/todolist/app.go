package todolist

import (
	"github.com/hay-kot/todolist/internal/core/config"
	"github.com/hay-kot/todolist/internal/core/todo"
)

// App is the central entry point for all list operations.
// Commands consume App instead of cherry-picking raw dependencies.
type App struct {
	List     *ListService
	Config   *config.Config
	Location todo.Resolution
}

// NewApp constructs an App from explicit dependencies.
func NewApp(list *ListService, cfg *config.Config, location todo.Resolution) *App {
	return &App{
		List:     list,
		Config:   cfg,
		Location: location,
	}
}
