package middleware

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetUpMiddleware wires the CORS policy. Origins come from CORS_ORIGINS
// (comma-separated); the defaults cover local development and the deployed
// frontends.
func SetUpMiddleware(r *gin.Engine) {
	origins := []string{
		"http://localhost:3000",
		"https://games-frontend.vercel.app",
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
}
