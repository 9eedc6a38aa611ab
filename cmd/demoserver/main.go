package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"apilab/internal/config"
	"apilab/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	configFile := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	store := handler.NewMemoryStore()
	demoHandler := handler.NewDemoHandler(store, cfg.Auth.Key)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}))

	r.GET("/todos", demoHandler.GetTodos)
	r.GET("/todos/:id", demoHandler.GetTodo)
	r.GET("/planetary/apod", demoHandler.GetPicture)
	r.GET("/broken", demoHandler.GetBroken)
	r.GET("/health", demoHandler.GetHealth)

	slog.Info("serving sample APIs", "address", cfg.ListenAddress)

	err = r.Run(cfg.ListenAddress)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
