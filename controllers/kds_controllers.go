package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yeremiapane/lachapa-pdv/kds"
	"github.com/yeremiapane/lachapa-pdv/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type KDSController struct {
	Hub *kds.Hub
}

func NewKDSController(hub *kds.Hub) *KDSController {
	return &KDSController{Hub: hub}
}

// BoardSocket -> GET /ws/board, pushes order events to board screens.
func (kc *KDSController) BoardSocket(c *gin.Context) {
	role := c.GetString("role")
	if role == "" {
		role = "board"
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}

	kc.Hub.RegisterClient(ws, role)
	defer kc.Hub.UnregisterClient(ws)

	// clients only listen; reading detects the disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
}
