package controllers

import (
	"log"
	"net/http"

	"hotel-receptionist/services"
	"hotel-receptionist/utils"

	"github.com/gin-gonic/gin"
)

type RoomTypeController struct {
	RoomTypes *services.RoomTypeService
}

func NewRoomTypeController(roomTypes *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypes: roomTypes}
}

func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	types, err := rtc.RoomTypes.GetAll()
	if err != nil {
		log.Printf("❌ DB ERROR listing room types: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "Database error")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}
