package utils

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type errorLogWriter struct {
	gin.ResponseWriter
	gc        *gin.Context
	requestID string
}

func (w errorLogWriter) Write(b []byte) (int, error) {
	status := w.gc.Writer.Status()
	if status >= 400 {
		log.Printf("[DEBUG ERROR] %s: Status %d, Body: %s", w.requestID, status, string(b))
	}
	return w.ResponseWriter.Write(b)
}

// ErrorLogMiddleware doesn't work with GZIP
func ErrorLogMiddleware(c *gin.Context) {
	blw := &errorLogWriter{gc: c, ResponseWriter: c.Writer, requestID: uuid.NewString()}
	c.Writer = blw
	c.Next()
}
