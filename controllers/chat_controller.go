package controllers

import (
	"log"
	"net/http"

	"hotel-receptionist/services"
	"hotel-receptionist/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

type chatRequest struct {
	Message string              `json:"message" binding:"required"`
	History []services.ChatTurn `json:"history"`
}

// HandleChat (POST /api/chat) runs one conversational turn. The widget
// resends the visible history with each message; nothing is stored
// server-side.
func (cc *ChatController) HandleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	reply, err := cc.Chat.Respond(c.Request.Context(), req.History, req.Message)
	if err != nil {
		log.Printf("❌ chat turn failed: %v", err)
		utils.JSONError(c, http.StatusBadGateway, "The receptionist is unavailable right now, please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
