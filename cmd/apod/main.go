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
	"github.com/tidwall/gjson"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	configFile := flag.String("config", "", "path to the config file")
	date := flag.String("date", "", "picture date (YYYY-MM-DD), empty for today")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	client := apis.NewAPODClient(apis.APODConfig{
		BaseURL:    cfg.APODBaseURL,
		APIKey:     cfg.Auth.Key,
		Placement:  fetch.Placement(cfg.Auth.Placement),
		QueryParam: cfg.Auth.QueryParam,
		Timeout:    cfg.Timeout(),
	})

	raw, err := client.PictureJSON(*date)
	if err != nil {
		fetch.Report(os.Stderr, err)
		return
	}

	slog.Info("picture of the day",
		"title", gjson.GetBytes(raw, "title").String(),
		"date", gjson.GetBytes(raw, "date").String(),
		"media_type", gjson.GetBytes(raw, "media_type").String(),
	)

	if err := fetch.Print(os.Stdout, raw, cfg.Color); err != nil {
		fetch.Report(os.Stderr, err)
	}
}
