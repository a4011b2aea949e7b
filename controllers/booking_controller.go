package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hotel-receptionist/services"
	"hotel-receptionist/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{Bookings: bookings}
}

type createBookingRequest struct {
	RoomID    uint   `json:"roomId" binding:"required"`
	GuestName string `json:"guestName" binding:"required"`
	CheckIn   string `json:"checkIn" binding:"required"`
	CheckOut  string `json:"checkOut" binding:"required"`
}

// ----------------------------------------------------
// 1. Create Booking (POST /api/bookings)
// ----------------------------------------------------

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	rng, err := services.ParseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	res, err := bc.Bookings.BookRoom(req.RoomID, req.GuestName, rng)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRange), errors.Is(err, services.ErrGuestRequired):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRoomNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, services.ErrConflict):
			utils.JSONError(c, http.StatusConflict, err.Error())
		default:
			log.Printf("❌ DB ERROR creating booking: %v", err)
			utils.JSONError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusCreated, res)
}

// ----------------------------------------------------
// 2. List Bookings (GET /api/bookings)
// ----------------------------------------------------

func (bc *BookingController) GetBookings(c *gin.Context) {
	list, err := bc.Bookings.ListReservations()
	if err != nil {
		log.Printf("❌ DB ERROR listing bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	c.JSON(http.StatusOK, list)
}

// ----------------------------------------------------
// 3. Get Booking (GET /api/bookings/:id)
// ----------------------------------------------------

func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id.")
		return
	}

	res, err := bc.Bookings.GetReservation(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found.")
			return
		}
		log.Printf("❌ DB ERROR loading booking %d: %v", id, err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, res)
}
