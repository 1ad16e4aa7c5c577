package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cardbin/cardbin-api/auth"
	"github.com/cardbin/cardbin-api/config"
	"github.com/cardbin/cardbin-api/graph"
	"github.com/cardbin/cardbin-api/middleware"
	"github.com/cardbin/cardbin-api/resolvers"
	"github.com/getsentry/sentry-go"
	"github.com/graphql-go/handler"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func init() {
	// Load .env file if not in production environment
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil {
			log.Printf("Warning: .env file not found, environment variables might not be loaded: %v", err)
		}
	}
}

func main() {
	env := config.LoadEnvironment()

	if env.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         env.SentryDSN,
			Environment: os.Getenv("APP_ENV"),
		})
		if err != nil {
			log.Fatalf("sentry init failed: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Initialize database connection
	config.Connect()

	identity, err := auth.NewAuth0Verifier(env.Auth0Domain, env.Auth0Audience)
	if err != nil {
		log.Fatalf("identity verifier init failed: %v", err)
	}

	schema, err := graph.Schema(resolvers.New(config.Database, identity))
	if err != nil {
		log.Fatalf("schema init failed: %v", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     env.IsDevelopment,
		GraphiQL:   env.IsDevelopment,
		Playground: false,
	}))

	// Configure CORS with specific options
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "https://cardbin.app", "https://www.cardbin.app"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler(middleware.WithUser(middleware.WithLoaders(config.Database)(mux)))

	// Server configuration

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000" // fallback port for local development
	}
	serverAddr := "0.0.0.0:" + port

	http.ListenAndServe(serverAddr, corsHandler)
}
