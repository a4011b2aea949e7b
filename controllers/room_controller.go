package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"hotel-receptionist/services"
	"hotel-receptionist/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms    *services.RoomService
	Bookings *services.BookingService
}

func NewRoomController(rooms *services.RoomService, bookings *services.BookingService) *RoomController {
	return &RoomController{Rooms: rooms, Bookings: bookings}
}

// ----------------------------------------------------
// 1. List Rooms (GET /api/rooms)
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	filter := services.RoomFilter{
		Type:    strings.TrimSpace(c.Query("type")),
		Amenity: strings.TrimSpace(c.Query("amenity")),
	}
	if raw := c.Query("max_rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			utils.JSONError(c, http.StatusBadRequest, "Invalid max_rate.")
			return
		}
		filter.MaxRate = v
	}

	var rng services.DateRange
	ci, co := c.Query("check_in"), c.Query("check_out")
	if ci != "" || co != "" {
		var err error
		rng, err = services.ParseDateRange(ci, co)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		if !rng.Valid() {
			utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidRange.Error())
			return
		}
	}

	rooms, err := rc.Bookings.FindRooms(filter, rng)
	if err != nil {
		log.Printf("❌ DB ERROR listing rooms: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 2. Get Room (GET /api/rooms/:id)
// ----------------------------------------------------

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid room id.")
		return
	}

	room, err := rc.Rooms.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Room not found.")
			return
		}
		log.Printf("❌ DB ERROR loading room %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, room)
}
