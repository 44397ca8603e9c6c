package controllers

import (
	"net/http"
	"time"

	"github.com/Chase-42/recipe-vault-sub002/middlewares"
	"github.com/Chase-42/recipe-vault-sub002/services"
	"github.com/Chase-42/recipe-vault-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type RealtimeController struct {
	hub *services.RealtimeHub
}

func NewRealtimeController(hub *services.RealtimeHub) *RealtimeController {
	return &RealtimeController{hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind ALB/CloudFront if needed
}

// UpdatesWS streams shopping-list and meal-plan change events to the
// authenticated user.
func (rc *RealtimeController) UpdatesWS(c *gin.Context) {
	userID, err := middlewares.CurrentUserID(c)
	if err != nil {
		utils.HandleAPIError(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	cl := services.NewWSClient(userID, conn)
	rc.hub.Register(cl)

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := cl.Ping(); err != nil {
				rc.hub.Unregister(cl)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			rc.hub.Unregister(cl)
			return
		}
	}
}
