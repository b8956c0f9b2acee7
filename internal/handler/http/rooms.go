package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reserveit/internal/domain"
)

// staticRooms is the fixed list of bookable spaces. It exists only for
// display: reservations store the room name as free text and are not
// validated against this list.
var staticRooms = []domain.Room{
	{ID: "room-a", Name: "Multipurpose Hall", ImageURL: "/images/rooms/multipurpose-hall.jpg", Capacity: "40-100 people", Location: "7th Floor"},
	{ID: "room-b", Name: "Conference Room B", ImageURL: "/images/rooms/conference-room-b.jpg", Capacity: "20-60 people", Location: "5th Floor"},
	{ID: "room-c", Name: "Cross Theater (AVR)", ImageURL: "/images/rooms/cross-theater.jpg", Capacity: "30-80 people", Location: "7th Floor"},
	{ID: "room-d", Name: "Sedes Sapientiae Auditorium", ImageURL: "/images/rooms/sedes-auditorium.jpg", Capacity: "50-150 people", Location: "7th Floor"},
}

// RoomHandler serves the static room list.
type RoomHandler struct{}

// NewRoomHandler creates a RoomHandler instance.
func NewRoomHandler() *RoomHandler {
	return &RoomHandler{}
}

// List handles GET /api/rooms.
func (h *RoomHandler) List(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, staticRooms)
}
