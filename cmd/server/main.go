package main

import (
	"flag"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"

	"github.com/videochess/videochess-backend/internal/chooser"
	"github.com/videochess/videochess-backend/internal/controller"
	"github.com/videochess/videochess-backend/internal/middleware"
	"github.com/videochess/videochess-backend/internal/service"
	"github.com/videochess/videochess-backend/internal/store"
)

func main() {
	addr := flag.String("addr", getenv("VIDEOCHESS_ADDR", ":3000"), "listen address")
	dataDir := flag.String("data", getenv("VIDEOCHESS_DATA", "data"), "badger data directory")
	llmBaseURL := flag.String("llm-base-url", getenv("VIDEOCHESS_LLM_BASE_URL", ""), "OpenAI-compatible API base URL")
	turnWait := flag.Duration("turn-wait", 0, "pause between autoplayed turns")
	allowOrigins := flag.String("allow-origins", getenv("VIDEOCHESS_ALLOW_ORIGINS", "http://localhost:5173"), "CORS origins")
	flag.Parse()

	llmAPIKey := os.Getenv("VIDEOCHESS_API_KEY")

	st, err := store.Open(*dataDir)
	if err != nil {
		log.Fatalf("store init: %v", err)
	}
	defer st.Close()

	// A side configured with model "first" (or any model when no API key is
	// set) plays the deterministic first legal move.
	factory := func(modelName string) chooser.Chooser {
		if modelName == "" || modelName == "first" || llmAPIKey == "" {
			return chooser.FirstMove{}
		}
		return chooser.NewLLM(*llmBaseURL, llmAPIKey, modelName)
	}

	// Initialize services
	gameManager := service.NewGameManager(st, factory)
	gameManager.SetTurnWait(*turnWait)
	gameService := service.NewGameService(gameManager)

	// Initialize controllers
	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     *allowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Client-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	// Set up WebSocket routes
	app.Use("/ws/*", middleware.EnsureClientID())
	app.Get("/ws/game/:gameId", middleware.WebSocketUpgrade(), websocket.New(func(c *websocket.Conn) {
		wsController.HandleConnection(c)
	}, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	// Set up REST routes
	api := app.Group("/api", middleware.EnsureClientID())

	// Game routes
	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/:gameId/start", gameController.StartGame)
	gameRoutes.Post("/:gameId/step", gameController.StepGame)
	gameRoutes.Get("/:gameId/log", gameController.GetGameLog)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	log.Fatal(app.Listen(*addr))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
