package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"volunteernetwork/internal/delivery/http/helpers"
	"volunteernetwork/internal/domain"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// RegisterVolunteerRequest is the request body for POST /volunteers.
type RegisterVolunteerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Validate implements Validator. Returns error messages for required and format rules.
func (v RegisterVolunteerRequest) Validate() []string {
	var errs []string
	if v.Email == "" {
		errs = append(errs, "email is required")
	} else if !emailRegex.MatchString(v.Email) {
		errs = append(errs, "email is invalid")
	}
	if v.Name == "" {
		errs = append(errs, "name is required")
	}
	return errs
}

// VolunteerSuccessResponse is the success response envelope for single-volunteer endpoints.
type VolunteerSuccessResponse struct {
	Data  *domain.Volunteer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// VolunteerListSuccessResponse is the success response envelope for GET /volunteers (200).
type VolunteerListSuccessResponse struct {
	Data  []*domain.Volunteer `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

type VolunteerController struct {
	Logger  *slog.Logger
	Service domain.VolunteerService
}

func NewVolunteerController(logger *slog.Logger, svc domain.VolunteerService) *VolunteerController {
	return &VolunteerController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a volunteer
// @Description Registers a volunteer. Emails are unique: registering an email twice returns 409 and no second record is created.
// @Tags volunteers
// @Accept json
// @Produce json
// @Param volunteer body RegisterVolunteerRequest true "Volunteer data"
// @Success 201 {object} controllers.VolunteerSuccessResponse "data contains the created volunteer"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers [post]
func (c *VolunteerController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterVolunteerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	volunteer := domain.NewVolunteer(req.Email, req.Name, req.Phone, time.Now())
	if err := c.Service.Register(r.Context(), volunteer); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "email already registered")
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, volunteer)
}

// List godoc
// @Summary List all volunteers
// @Description Returns all volunteers. Result order is unspecified.
// @Tags volunteers
// @Produce json
// @Success 200 {object} controllers.VolunteerListSuccessResponse "data contains the volunteers"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers [get]
func (c *VolunteerController) List(w http.ResponseWriter, r *http.Request) {
	volunteers, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, volunteers)
}

// Get godoc
// @Summary Get a volunteer by ID
// @Tags volunteers
// @Produce json
// @Param volunteerID path string true "Volunteer ID"
// @Success 200 {object} controllers.VolunteerSuccessResponse "data contains the volunteer"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{volunteerID} [get]
func (c *VolunteerController) Get(w http.ResponseWriter, r *http.Request) {
	volunteerID := r.PathValue("volunteerID")
	if volunteerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing volunteerID")
		return
	}
	volunteer, err := c.Service.Get(r.Context(), volunteerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "volunteer not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, volunteer)
}

// Delete godoc
// @Summary Delete a volunteer
// @Tags volunteers
// @Produce json
// @Param volunteerID path string true "Volunteer ID"
// @Success 200 {object} helpers.APIResponse "data is null on success"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /volunteers/{volunteerID} [delete]
func (c *VolunteerController) Delete(w http.ResponseWriter, r *http.Request) {
	volunteerID := r.PathValue("volunteerID")
	if volunteerID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing volunteerID")
		return
	}
	if err := c.Service.Delete(r.Context(), volunteerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "volunteer not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, nil)
}
