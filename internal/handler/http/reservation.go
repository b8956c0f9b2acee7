package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"reserveit/internal/service"
)

// ReservationHandler exposes the reservation CRUD endpoints.
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a ReservationHandler instance.
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ReservationRequest is the request body of create and update. On update
// the username is the caller's identity claim, not a new owner: the stored
// owner is never changed.
type ReservationRequest struct {
	RoomName  string `json:"roomName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
	Username  string `json:"username"`
}

func (r ReservationRequest) toInput() service.ReservationInput {
	return service.ReservationInput{
		RoomName:  r.RoomName,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Purpose:   r.Purpose,
		Username:  r.Username,
	}
}

// DeleteRequest is the request body of delete.
type DeleteRequest struct {
	Username string `json:"username"`
}

// DeleteResponse confirms a successful delete.
type DeleteResponse struct {
	Success bool `json:"success"`
	ID      uint `json:"id"`
}

// List handles GET /api/reservations. Safe to call without authentication.
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, reservations)
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.CreateReservation: invalid request body")
		ErrorResponse(c, http.StatusBadRequest, service.ErrMissingFields.Error())
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, reservation)
}

// Update handles PUT /api/reservations/:id.
func (h *ReservationHandler) Update(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateReservation: invalid request body")
		ErrorResponse(c, http.StatusBadRequest, service.ErrMissingFields.Error())
		return
	}

	reservation, err := h.reservationService.Update(c.Request.Context(), parseID(c.Param("id")), req.toInput())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, reservation)
}

// Delete handles DELETE /api/reservations/:id. The caller's username
// travels in the JSON body.
func (h *ReservationHandler) Delete(c *gin.Context) {
	var req DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.WithError(err).Warn("Handler.DeleteReservation: invalid request body")
		ErrorResponse(c, http.StatusBadRequest, service.ErrUsernameRequired.Error())
		return
	}
	if req.Username == "" {
		ErrorResponse(c, http.StatusBadRequest, service.ErrUsernameRequired.Error())
		return
	}

	deletedID, err := h.reservationService.Delete(c.Request.Context(), parseID(c.Param("id")), req.Username)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, DeleteResponse{Success: true, ID: deletedID})
}

// parseID maps a non-numeric path id to 0, which matches no row. The
// request then follows the normal path: field validation first, then the
// same collapsed 403 as an owner mismatch.
func parseID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
