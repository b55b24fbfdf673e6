package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"volunteernetwork/internal/delivery/http/helpers"
	"volunteernetwork/internal/domain"
)

// CreateUserEventRequest is the request body for POST /user-events.
type CreateUserEventRequest struct {
	UserEmail  string `json:"user_email"`
	EventID    string `json:"event_id"`
	EventTitle string `json:"event_title"`
	Date       string `json:"date"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (u CreateUserEventRequest) Validate() []string {
	var errs []string
	if u.UserEmail == "" {
		errs = append(errs, "user_email is required")
	} else if !emailRegex.MatchString(u.UserEmail) {
		errs = append(errs, "user_email is invalid")
	}
	if u.EventID == "" {
		errs = append(errs, "event_id is required")
	}
	return errs
}

// UserEventSuccessResponse is the success response envelope for single user-event endpoints.
type UserEventSuccessResponse struct {
	Data  *domain.UserEvent `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UserEventListSuccessResponse is the success response envelope for GET /user-events (200).
type UserEventListSuccessResponse struct {
	Data  []*domain.UserEvent `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type UserEventController struct {
	Logger  *slog.Logger
	Service domain.UserEventService
}

func NewUserEventController(logger *slog.Logger, svc domain.UserEventService) *UserEventController {
	return &UserEventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Join a user to an event
// @Description Creates a user-event association. No uniqueness is enforced.
// @Tags user-events
// @Accept json
// @Produce json
// @Param userEvent body CreateUserEventRequest true "Association data"
// @Success 201 {object} controllers.UserEventSuccessResponse "data contains the created association"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user-events [post]
func (c *UserEventController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userEvent := domain.NewUserEvent(req.UserEmail, req.EventID, req.EventTitle, req.Date, time.Now())
	if err := c.Service.Create(r.Context(), userEvent); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, userEvent)
}

// List godoc
// @Summary List all user-event associations
// @Description Returns all user-event associations. Result order is unspecified.
// @Tags user-events
// @Produce json
// @Success 200 {object} controllers.UserEventListSuccessResponse "data contains the associations"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user-events [get]
func (c *UserEventController) List(w http.ResponseWriter, r *http.Request) {
	userEvents, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, userEvents)
}

// Get godoc
// @Summary Get a user-event association by ID
// @Tags user-events
// @Produce json
// @Param userEventID path string true "Association ID"
// @Success 200 {object} controllers.UserEventSuccessResponse "data contains the association"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user-events/{userEventID} [get]
func (c *UserEventController) Get(w http.ResponseWriter, r *http.Request) {
	userEventID := r.PathValue("userEventID")
	if userEventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userEventID")
		return
	}
	userEvent, err := c.Service.Get(r.Context(), userEventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, userEvent)
}

// Delete godoc
// @Summary Remove a user-event association
// @Tags user-events
// @Produce json
// @Param userEventID path string true "Association ID"
// @Success 200 {object} helpers.APIResponse "data is null on success"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user-events/{userEventID} [delete]
func (c *UserEventController) Delete(w http.ResponseWriter, r *http.Request) {
	userEventID := r.PathValue("userEventID")
	if userEventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing userEventID")
		return
	}
	if err := c.Service.Delete(r.Context(), userEventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "user event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
