package server

import (
	"net/http"
	"strings"
	"time"

	"tosec-parser/internal/tosec"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// maxBatchNames caps the names accepted by one POST /api/classify.
const maxBatchNames = 10000

type classifyRequest struct {
	Names []string `json:"names" binding:"required"`
}

type classifyResponse struct {
	Records []tosec.Record `json:"records"`
}

// NewRouter builds the HTTP API around the classifier.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	api := router.Group("/api")
	api.GET("/columns", getColumns)
	api.GET("/classify", getClassify)
	api.POST("/classify", postClassify)

	return router
}

// requestLogger logs each request through zerolog.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("HTTP request")
	}
}

// getColumns lists the record fields in output order
func getColumns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"columns": tosec.Columns()})
}

// getClassify classifies the name given in the query string. A name with a
// file extension can be passed with file=true.
func getClassify(c *gin.Context) {
	name := c.Query("name")
	if strings.TrimSpace(name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing name parameter"})
		return
	}
	c.JSON(http.StatusOK, parseName(name, c.Query("file") == "true"))
}

// postClassify classifies a batch of names, keeping their order
func postClassify(c *gin.Context) {
	var req classifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Names) > maxBatchNames {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too many names"})
		return
	}

	files := c.Query("file") == "true"
	records := lo.Map(req.Names, func(name string, _ int) tosec.Record {
		return parseName(name, files)
	})
	c.JSON(http.StatusOK, classifyResponse{Records: records})
}

func parseName(name string, file bool) tosec.Record {
	if file {
		return tosec.ParseFile(name)
	}
	return tosec.Parse(name)
}
