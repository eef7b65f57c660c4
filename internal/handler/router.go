package handler

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, digestHandler *DigestHandler, queryLogHandler *QueryLogHandler) {
	LoadTemplates(r)

	r.GET("/", digestHandler.GetIndex)
	r.POST("/", digestHandler.PostIndex)
	r.POST("/api/digest", digestHandler.PostDigest)
	r.GET("/api/queries", queryLogHandler.GetQueries)
	r.GET("/api/queries/stats", queryLogHandler.GetStats)
	r.GET("/health", queryLogHandler.GetHealth)
}
