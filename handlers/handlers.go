package handlers

import "blog/models"

// App bundles the shared handles the route handlers need. It replaces any
// global db/session state: one instance is built in main and injected.
type App struct {
	Store *models.Store
}

func NewApp(store *models.Store) *App {
	return &App{Store: store}
}
