package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/:name", h.get)
	rg.POST("/:name", h.writeFile)
	rg.DELETE("/:name", h.delete)

	rg.POST("/create/:name", h.create)
	rg.POST("/stop/:name", h.stop)
	rg.POST("/start/:name", h.start)
	rg.POST("/restart/:name", h.restart)
	rg.POST("/update/:name", h.update)
}
