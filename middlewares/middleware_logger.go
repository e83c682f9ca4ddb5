package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/yeremiapane/lachapa-pdv/utils"
)

func LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		entry := utils.InfoLogger.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"status":  c.Writer.Status(),
			"latency": time.Since(start),
			"ip":      c.ClientIP(),
			"path":    path,
		})
		if len(c.Errors) > 0 {
			entry.Warn(c.Errors.String())
			return
		}
		entry.Info("request")
	}
}

// LogOrderAction logs the outcome of an order operation such as a receipt
// print or a status change, keyed by the :id route parameter.
func LogOrderAction(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		c.Next()

		if c.Writer.Status() < 400 {
			utils.InfoLogger.Printf("%s for order %s done", action, id)
		} else {
			utils.ErrorLogger.Printf("%s for order %s failed with status %d", action, id, c.Writer.Status())
		}
	}
}
