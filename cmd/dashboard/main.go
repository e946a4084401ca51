package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"weatherdash/internal/config"
	"weatherdash/internal/dashboard"
	"weatherdash/internal/providers/ipapi"

	"github.com/joho/godotenv"
)

// ipLocator adapts the ip-api.com client to the controller's Locator
type ipLocator struct {
	client *ipapi.Client
}

func (l *ipLocator) Locate() (float64, float64, error) {
	loc, err := l.client.Locate()
	if err != nil {
		return 0, 0, err
	}
	return loc.Lat, loc.Lon, nil
}

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "Base URL of the dashboard API server")
	noGeo := flag.Bool("no-geo", false, "Disable IP-based geolocation")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	client := dashboard.NewAPIClient(*apiURL)

	opts := []dashboard.Option{
		dashboard.WithDefaultCity(cfg.App.DefaultCity),
	}
	if !*noGeo {
		opts = append(opts, dashboard.WithLocator(&ipLocator{client: ipapi.NewClient()}))
	}

	controller := dashboard.NewController(client, logger, opts...)
	defer controller.Close()

	// Every submitted command counts as an interaction outside the search
	// box, which dismisses the autocomplete before the command runs
	outside := make(chan struct{}, 1)
	controller.Bind(outside)

	controller.InitialLoad()
	fmt.Print(dashboard.Render(controller.View()))
	printHelp()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit" || line == "/q":
			return
		case line == "/help":
			printHelp()
			continue
		case line == "/loc":
			outside <- struct{}{}
			controller.SearchByLocation()
		case strings.HasPrefix(line, "/type "):
			// Typing updates the query and shows autocomplete suggestions
			controller.SetQuery(strings.TrimPrefix(line, "/type "))
		case strings.HasPrefix(line, "/pick "):
			controller.SelectCity(strings.TrimPrefix(line, "/pick "))
		case line == "":
			continue
		default:
			outside <- struct{}{}
			controller.SetQuery(line)
			controller.Search(line)
		}

		fmt.Print(dashboard.Render(controller.View()))
	}

	if err := scanner.Err(); err != nil {
		logger.Error("input error", "error", err)
	}
}

func printHelp() {
	fmt.Println(`Commands:
  <city>        search for a city
  /type <text>  type into the search box (shows suggestions)
  /pick <city>  pick a suggestion
  /loc          use my location
  /help         show this help
  /quit         exit`)
}
