package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/elham715/Exam-System/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub *ws.Hub
}

func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket godoc
// @Summary      WebSocket connection for attempt updates
// @Description  Connect via WebSocket to receive countdown ticks and the submission event
// @Tags         websocket
// @Param        id path int true "Attempt ID"
// @Router       /ws/attempt/{id} [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	attemptID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid attempt id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	aid := uint(attemptID)
	h.hub.AddConnection(aid, conn)
	defer h.hub.RemoveConnection(aid, conn)

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
