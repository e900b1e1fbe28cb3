package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Waddenn/movie-detail/internal/appinfo"
	"github.com/Waddenn/movie-detail/internal/config"
	"github.com/Waddenn/movie-detail/internal/logging"
	"github.com/Waddenn/movie-detail/internal/tmdb"
	"github.com/Waddenn/movie-detail/internal/tui"
	"github.com/Waddenn/movie-detail/internal/tui/detail"
)

func main() {
	var (
		idFlag       = flag.String("id", "", "TMDB movie id to open")
		tokenFlag    = flag.String("token", "", "TMDB v4 read access token")
		apiKeyFlag   = flag.String("api-key", "", "TMDB v3 API key")
		languageFlag = flag.String("language", "", "Response language, e.g. en-US")
		configFlag   = flag.String("config", "", "Path to config.toml")
	)
	flag.Parse()

	path := *configFlag
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Fatalf("Error resolving config path: %v", err)
		}
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Apply flags to config
	applyFlags := func(c *config.Config) {
		if *tokenFlag != "" {
			c.TMDB.AccessToken = *tokenFlag
		}
		if *apiKeyFlag != "" {
			c.TMDB.APIKey = *apiKeyFlag
		}
		if *languageFlag != "" {
			c.TMDB.Language = *languageFlag
		}
	}
	applyFlags(cfg)

	// Save config if credentials were provided. Only the file contents plus
	// the flags are written; environment values stay out of it.
	if *tokenFlag != "" || *apiKeyFlag != "" {
		if err := config.Update(path, applyFlags); err != nil {
			log.Printf("Warning: failed to save config: %v", err)
		} else {
			fmt.Printf("✅ Configuration saved to %s\n", path)
		}
	}

	if !cfg.HasCredentials() {
		fmt.Println("❌ Missing TMDB credentials.")
		fmt.Println("Usage: movie-detail --token TOKEN [--id 27205]")
		fmt.Println("   or: movie-detail --api-key KEY [--id 27205]")
		fmt.Printf("   or set TMDB_ACCESS_TOKEN / TMDB_API_KEY, or edit %s\n", path)
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("Error opening log: %v", err)
	}
	defer closer.Close()

	info := appinfo.Default()
	logger.Info("starting", "version", info.Version, "movie_id", *idFlag)

	client := tmdb.New(tmdb.Options{
		BaseURL:     cfg.TMDB.BaseURL,
		APIKey:      cfg.TMDB.APIKey,
		AccessToken: cfg.TMDB.AccessToken,
		Language:    cfg.TMDB.Language,
		UserAgent:   info.UserAgent,
		Timeout:     cfg.TMDB.Timeout.Duration,
		RetryMax:    cfg.TMDB.RetryMax,
	})

	m := tui.NewModel(client, detail.OptionsFromConfig(cfg, logger), *idFlag)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("Error running program: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
