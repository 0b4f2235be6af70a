package notify

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamHandler serves the school notification stream as server-sent events.
// The endpoint is gate-exempt so dashboard clients can subscribe before
// logging in, matching the legacy notification hub.
func StreamHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")

		id, events := hub.Register()
		defer hub.Unregister(id)

		c.Stream(func(w io.Writer) bool {
			select {
			case payload, ok := <-events:
				if !ok {
					return false
				}
				c.SSEvent("message", string(payload))
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}
