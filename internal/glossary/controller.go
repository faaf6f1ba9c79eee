package glossary

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/talks", c.ListTalks)
}

func (c *ControllerImpl) ListTalks(ctx *gin.Context) {
	response, err := c.service.ListTalks(ctx.Request.Context())
	if err != nil {
		log.Printf("List talks failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Search is currently unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, response)
}
