package assistant

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"DharmaSearch/be/internal/extractor"
)

type ControllerImpl struct {
	service   Service
	extractor extractor.Service
}

func NewControllerImpl(service Service, extractor extractor.Service) *ControllerImpl {
	return &ControllerImpl{service: service, extractor: extractor}
}

func (c *ControllerImpl) RegisterRoutes(router *gin.Engine) {
	router.POST("/v1/extract-phrases", c.ExtractPhrases)
	router.POST("/v1/assistant/query", c.Query)
}

// ExtractPhrases exposes the extraction stage on its own, for a presentation
// layer that drives the search itself.
func (c *ControllerImpl) ExtractPhrases(ctx *gin.Context) {
	var request ExtractPhrasesRequest
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	phrases, err := c.extractor.Extract(ctx.Request.Context(), request.Question)
	if err != nil {
		var extractionErr *extractor.ExtractionError
		if errors.As(err, &extractionErr) {
			switch extractionErr.Kind {
			case extractor.KindEmptyQuestion:
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
				return
			case extractor.KindNoPhrases:
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "No valid phrases extracted"})
				return
			}
		}
		log.Printf("Extract phrases failed: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to extract phrases",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, ExtractPhrasesResponse{Phrases: phrases})
}

// Query runs the full guided pipeline for one question.
func (c *ControllerImpl) Query(ctx *gin.Context) {
	var request QueryRequest
	if err := ctx.BindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	results, err := c.service.Query(ctx.Request.Context(), request.Question)
	if err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Question is required"})
			return
		}
		log.Printf("Guided query failed: %v", err)
		failure := classifyFailure(err)
		ctx.JSON(http.StatusBadGateway, gin.H{"error": failure.Message})
		return
	}

	ctx.JSON(http.StatusOK, QueryResponse{Results: results, Total: len(results)})
}
