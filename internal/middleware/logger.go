package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs requests without bodies or credentials.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if userID, exists := c.Get("userId"); exists {
			log.Printf("[%s] %s %s | %d | %v | user_id=%v",
				method, path, c.ClientIP(), statusCode, latency, userID)
		} else {
			log.Printf("[%s] %s %s | %d | %v",
				method, path, c.ClientIP(), statusCode, latency)
		}
	}
}
