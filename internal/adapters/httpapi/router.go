package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// SetupRouter configures the gin engine with every /api/v1 route
func SetupRouter(h *Handler, log logrus.FieldLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(log))

	r.GET("/healthz", h.Health)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/seminars", h.ListSeminars)
		apiV1.POST("/initialize", h.Initialize)
		apiV1.GET("/status", h.Status)

		seminars := apiV1.Group("/seminars/:id")
		{
			seminars.POST("/connect", h.Connect)
			seminars.GET("/integration", h.Integration)
			seminars.POST("/resources", h.Organize)
		}

		apiV1.GET("/settings", h.GetSettings)
		apiV1.PUT("/settings", h.PutSettings)
	}

	return r
}

// RequestLogger tags each request with an id and logs it once served
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		log.WithFields(logrus.Fields{
			"request_id": id,
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request served")
	}
}
