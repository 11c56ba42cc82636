package handlers

import (
	"log"
	"net/http"

	"duo-server/auth"
	"duo-server/services"
	"duo-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// WSHandler groups dependencies for the user notification stream.
type WSHandler struct {
	mgr       *ws.Manager
	notifier  *services.Notifier
	jwtSecret []byte
}

func NewWSHandler(mgr *ws.Manager, notifier *services.Notifier, jwtSecret []byte) *WSHandler {
	return &WSHandler{mgr: mgr, notifier: notifier, jwtSecret: jwtSecret}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleUserWS upgrades to websocket and streams notifications to the user.
// GET /ws?token=<bearer token>
//
// Browsers cannot set headers on websocket requests, so the token rides in
// the query string instead of the Authorization header.
func (h *WSHandler) HandleUserWS(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token not provided or invalid"})
		return
	}

	claims, err := auth.ParseToken(tokenString, h.jwtSecret)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.mgr.Register(userID, conn)
	log.Printf("user connected: %d", userID)

	// Ensure cleanup on exit
	defer func() {
		h.mgr.Unregister(userID)
		log.Printf("user disconnected: %d", userID)
	}()

	// Flush anything queued while the user was offline
	h.notifier.DeliverPending(userID)

	// The stream is one-way; reads only detect disconnects and pings.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("user %d closed connection", userID)
			} else {
				log.Printf("read error from user %d: %v", userID, err)
			}
			return
		}
	}
}

// GetConnectedUsers GET /api/v1/users/connected
func (h *WSHandler) GetConnectedUsers(c *gin.Context) {
	ids := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"users": ids, "count": len(ids)})
}
