package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Waddenn/movie-detail/internal/appinfo"
	"github.com/Waddenn/movie-detail/internal/config"
	"github.com/Waddenn/movie-detail/internal/logging"
	"github.com/Waddenn/movie-detail/internal/tmdb"
	"github.com/Waddenn/movie-detail/internal/tui/detail"
)

// Fetches one movie and prints the rendered detail screen without the TUI.
func main() {
	var (
		id     = flag.String("id", "27205", "TMDB movie id")
		width  = flag.Int("width", 100, "Render width")
		height = flag.Int("height", 40, "Screen height used to size the backdrop")
		raw    = flag.Bool("raw", false, "Print the decoded fields instead of the layout")
	)
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}
	if !cfg.HasCredentials() {
		log.Fatal("set TMDB_ACCESS_TOKEN or TMDB_API_KEY")
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	logger := logging.NewWithWriter(os.Stderr, level)

	client := tmdb.New(tmdb.Options{
		BaseURL:     cfg.TMDB.BaseURL,
		APIKey:      cfg.TMDB.APIKey,
		AccessToken: cfg.TMDB.AccessToken,
		Language:    cfg.TMDB.Language,
		UserAgent:   appinfo.Default().UserAgent,
		Timeout:     cfg.TMDB.Timeout.Duration,
		RetryMax:    cfg.TMDB.RetryMax,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	d, err := client.MovieDetail(ctx, *id)
	if err != nil {
		log.Fatalf("MovieDetail failed: %v (%s)", err, detail.ErrorReason(err))
	}
	logger.Debug("fetched", "movie_id", *id, "took", time.Since(start))

	if *raw {
		fmt.Printf("ID: %d\nTitle: %s\nPoster: %q\nBackdrop: %q\nVote: %.1f\nRelease: %q\nGenres: %d\n",
			d.ID, d.Title, d.PosterPath, d.BackdropPath, d.VoteAverage, d.ReleaseDate, len(d.Genres))
		return
	}

	fmt.Println(detail.RenderDetail(*d, detail.OptionsFromConfig(cfg, logger), *width, *height))
}
