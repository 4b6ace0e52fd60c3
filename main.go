package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sunshinecool/games-backend/middleware"
	"github.com/sunshinecool/games-backend/routes"
	"github.com/sunshinecool/games-backend/services/rooms"
	"github.com/sunshinecool/games-backend/services/socket_io"
	socketio_types "github.com/sunshinecool/games-backend/services/socket_io/types"
)

func main() {
	godotenv.Load()

	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	// All live tables; injected everywhere, no globals
	directory := rooms.NewDirectory()

	sio := socketio_types.NewSocketServer()

	routes.SetupRoutes(r, directory, sio)

	(*socket_io.MySocketServer)(sio).Start(r, directory)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
