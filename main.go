package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"

	"DharmaSearch/be/internal/about"
	"DharmaSearch/be/internal/assistant"
	"DharmaSearch/be/internal/config"
	"DharmaSearch/be/internal/extractor"
	"DharmaSearch/be/internal/glossary"
	"DharmaSearch/be/internal/llm"
	"DharmaSearch/be/internal/search"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	envPath := os.Getenv("ENV_PATH")
	if envPath == "" {
		envPath = "config/.env"
	}
	cfg, err := config.LoadConfig(configPath, envPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize router
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     cfg.CORS.AllowMethods,
		AllowHeaders:     cfg.CORS.AllowHeaders,
		ExposeHeaders:    cfg.CORS.ExposeHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	}))

	// Pick the LLM provider backing phrase extraction
	var aiProvider llm.AIProvider
	var model string
	switch cfg.LLM.Provider {
	case "gemini":
		geminiClient, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.APIKey))
		if err != nil {
			log.Fatalf("Failed to create Gemini client: %v", err)
		}
		defer geminiClient.Close()
		aiProvider = llm.NewGeminiProvider(geminiClient)
		model = cfg.Gemini.Model
	default:
		aiProvider = llm.NewOpenAIProvider(openai.NewClient(cfg.OpenAI.APIKey))
		model = cfg.OpenAI.Model
	}

	// Search backend (read-only index client, shared across requests)
	searchService := search.NewAlgoliaService(search.NewAlgoliaIndex(cfg.Algolia))
	searchController := search.NewControllerImpl(searchService)
	searchController.RegisterRoutes(router)

	// Guided question-answering pipeline
	extractorService := extractor.NewServiceImpl(aiProvider, model)
	assistantService := assistant.NewServiceImpl(extractorService, searchService)
	assistantController := assistant.NewControllerImpl(assistantService, extractorService)
	assistantController.RegisterRoutes(router)

	// Chronological browse view
	glossaryService := glossary.NewServiceImpl(searchService)
	glossaryController := glossary.NewControllerImpl(glossaryService)
	glossaryController.RegisterRoutes(router)

	// Static lineage narrative
	aboutController := about.NewControllerImpl()
	aboutController.RegisterRoutes(router)

	// Start server
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
