package search

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ControllerImpl exposes the exploration query mode: free text plus facet
// refinements, with facet counts for the sidebar.
type ControllerImpl struct {
	service Service
}

func NewControllerImpl(service Service) *ControllerImpl {
	return &ControllerImpl{service: service}
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.GET("/v1/talks/search", c.Explore)
}

func (c *ControllerImpl) Explore(ctx *gin.Context) {
	req := ExploreRequest{
		Query:    ctx.Query("query"),
		Concepts: ctx.QueryArray("concept"),
		Tags:     ctx.QueryArray("tag"),
		Region:   ctx.Query("region"),
	}
	if page := ctx.Query("page"); page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
			return
		}
		req.Page = n
	}
	if perPage := ctx.Query("hits_per_page"); perPage != "" {
		n, err := strconv.Atoi(perPage)
		if err != nil || n <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hits_per_page"})
			return
		}
		req.HitsPerPage = n
	}

	response, err := c.service.Explore(ctx.Request.Context(), req)
	if err != nil {
		log.Printf("Explore failed: %v", err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Search is currently unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, response)
}
