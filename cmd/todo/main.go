package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"apilab/internal/config"
	"apilab/pkg/apis"
	"apilab/pkg/fetch"

	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	configFile := flag.String("config", "", "path to the config file")
	id := flag.Int("id", 1, "todo id to fetch")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	client := apis.NewTodosClient(apis.TodosConfig{
		BaseURL: cfg.TodosBaseURL,
		Timeout: cfg.Timeout(),
	})

	raw, err := client.TodoJSON(*id)
	if err != nil {
		fetch.Report(os.Stderr, err)
		return
	}

	if err := fetch.Print(os.Stdout, raw, cfg.Color); err != nil {
		fetch.Report(os.Stderr, err)
	}
}
