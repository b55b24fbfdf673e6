package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"volunteernetwork/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, volunteerController *controllers.VolunteerController, userEventController *controllers.UserEventController) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Server running..."))
	})

	// Volunteers
	mux.HandleFunc("POST /volunteers", volunteerController.Register)
	mux.HandleFunc("GET /volunteers", volunteerController.List)
	mux.HandleFunc("GET /volunteers/{volunteerID}", volunteerController.Get)
	mux.HandleFunc("DELETE /volunteers/{volunteerID}", volunteerController.Delete)

	// Events and banners
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PUT /events/{eventID}/banner", eventController.ReplaceBanner)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)
	mux.HandleFunc("GET /uploads/{key}", eventController.GetBanner)

	// User-event associations
	mux.HandleFunc("POST /user-events", userEventController.Create)
	mux.HandleFunc("GET /user-events", userEventController.List)
	mux.HandleFunc("GET /user-events/{userEventID}", userEventController.Get)
	mux.HandleFunc("DELETE /user-events/{userEventID}", userEventController.Delete)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
