package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/siftstack/sift/pkg/events"
)

// wsHandler upgrades to a WebSocket scoped to the caller's user
// channel. Identity comes from the same trusted proxy headers as the
// REST surface; the connection may only subscribe to its own channel.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, &ErrorResponse{
			Code:    "Internal",
			Message: "event streaming is not enabled on this replica",
		})
		return
	}

	userID := c.GetHeader(headerUserID)
	if c.GetHeader(headerTenantID) == "" || userID == "" {
		c.JSON(http.StatusUnauthorized, &ErrorResponse{
			Code:    "Unauthorized",
			Message: "missing identity headers",
		})
		return
	}

	opts := &websocket.AcceptOptions{}
	if s.serverCfg != nil && len(s.serverCfg.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.serverCfg.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		// Accept already wrote the handshake failure response.
		return
	}

	s.connManager.HandleConnection(c.Request.Context(), conn, events.UserChannel(userID))
}
