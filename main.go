package main

import (
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"leadquiz-service/internal/catalog"
	"leadquiz-service/internal/config"
	"leadquiz-service/internal/event"
	"leadquiz-service/internal/handlers"
	"leadquiz-service/internal/narrative"
	"leadquiz-service/internal/service"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// Question catalog: a static document loaded once. A service that
	// cannot load its catalog has nothing to serve.
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogURL != "" {
		cat, err = catalog.Fetch(cfg.CatalogURL)
	} else {
		cat, err = catalog.Load(cfg.CatalogPath)
	}
	if err != nil {
		log.Fatalf("Failed to load question catalog: %v", err)
	}
	log.Printf("Loaded catalog with %d questions", cat.Len())

	// Narrative generator
	var generator narrative.Generator
	if cfg.OpenAIAPIKey != "" {
		generator, err = narrative.NewOpenAIGenerator(narrative.OpenAIConfig{
			APIKey:  cfg.OpenAIAPIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
		})
		if err != nil {
			log.Fatalf("Failed to configure narrative generator: %v", err)
		}
	} else {
		log.Println("OPENAI_API_KEY not set, narratives will use the local fallback")
		generator = narrative.NewFallbackGenerator()
	}

	// RabbitMQ event publisher
	var publisher eventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		p, err := event.NewPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer p.Close()
		publisher = p
	} else {
		log.Println("RabbitMQ not configured, quiz events will not be published")
	}

	sessionService := service.NewSessionService(cat, generator)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	catalogHandler := handlers.NewCatalogHandler(cat)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	publicCatalog := r.Group("/public/quiz/catalog")
	{
		publicCatalog.GET("/", catalogHandler.ListQuestions)
		publicCatalog.GET("/:id", catalogHandler.GetQuestion)
	}

	setupSessionRoutes(r, sessionHandler, publisher)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}

// eventPublisher is satisfied by event.Publisher. Routes publish through
// it only when the wrapped handler produced a success response, so a
// rejected request never emits a lifecycle event.
type eventPublisher interface {
	Publish(eventType string, payload any) error
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, publisher eventPublisher) {
	publicSession := r.Group("/public/quiz/session")
	{
		publicSession.POST("/", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if publisher != nil && c.Writer.Status() < 400 {
				publisher.Publish("quiz.session.created", gin.H{
					"timestamp": time.Now(),
				})
			}
		})

		publicSession.GET("/:id", sessionHandler.GetSession)

		publicSession.POST("/:id/answers", func(c *gin.Context) {
			sessionHandler.SubmitAnswers(c)
			if publisher != nil && c.Writer.Status() < 400 {
				publisher.Publish("quiz.answers.submitted", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicSession.POST("/:id/contact", func(c *gin.Context) {
			sessionHandler.SubmitContact(c)
			if publisher != nil && c.Writer.Status() < 400 {
				publisher.Publish("quiz.lead.captured", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicSession.POST("/:id/submit", func(c *gin.Context) {
			sessionHandler.SubmitSession(c)
			if publisher != nil && c.Writer.Status() < 400 {
				publisher.Publish("quiz.session.completed", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicSession.POST("/:id/restart", func(c *gin.Context) {
			sessionHandler.RestartSession(c)
			if publisher != nil && c.Writer.Status() < 400 {
				publisher.Publish("quiz.session.restarted", gin.H{
					"session_id": c.Param("id"),
					"timestamp":  time.Now(),
				})
			}
		})

		publicSession.GET("/:id/result", sessionHandler.GetResult)
	}
}
