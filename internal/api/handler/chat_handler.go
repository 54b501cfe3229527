package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/soulofsrilanka/travel-api/internal/core/ports"
)

type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" validate:"required"`
}

type chatResponse struct {
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// Message answers one assistant message.
//
// @Summary      Send a message to the tour assistant
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Message and optional session id"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/chat [post]
func (h *ChatHandler) Message(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	sessionID, reply := h.service.Converse(req.SessionID, req.Message)
	return c.JSON(http.StatusOK, chatResponse{SessionID: sessionID, Reply: reply})
}
