package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// corsMiddleware permits all origins, methods, and headers. The API is a
// stateless public calculator, so there is nothing origin-sensitive to protect.
func corsMiddleware() gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowHeaders = []string{"*"}
	return cors.New(cfg)
}

// requestIDMiddleware tags every response with an X-Request-ID header,
// generating a UUID when the client didn't supply one. The ID is also set on
// the context for handlers that want to log it.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
