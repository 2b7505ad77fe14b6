package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fr0stylo/contentconnector/pkg/connectorclient"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	count := flag.Int("count", 0, "stop after this many submissions (0 runs until interrupted)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := connectorclient.Client{
		Endpoint:    cfg.BaseURL,
		APIKey:      cfg.APIKey,
		RoutePrefix: cfg.RoutePrefix,
		Timeout:     10 * time.Second,
	}

	generate(ctx, cfg.Interval, *count, func(ctx context.Context) error {
		return submit(ctx, client, cfg)
	})
}

// generate calls send once per interval until ctx ends or count sends are
// done (count 0 means no limit). It never waits after the final send.
func generate(ctx context.Context, interval time.Duration, count int, send func(context.Context) error) int {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for sent := 1; ; sent++ {
		if err := send(ctx); err != nil {
			fmt.Fprintln(os.Stderr, "submission error:", err)
		}
		if count > 0 && sent >= count {
			return sent
		}
		select {
		case <-ctx.Done():
			return sent
		case <-ticker.C:
		}
	}
}

func submit(ctx context.Context, client connectorclient.Client, cfg config) error {
	ref, err := randomRef(7)
	if err != nil {
		return fmt.Errorf("failed to generate reference: %w", err)
	}

	result, err := client.Submit(ctx, connectorclient.Submission{
		Title:       "Generated draft " + ref,
		Description: fmt.Sprintf("<p>Synthetic submission <strong>%s</strong> sent at %s.</p>", ref, time.Now().UTC().Format(time.RFC3339)),
		Tags:        cfg.Tags,
		Category:    cfg.Category,
		MediaURL:    cfg.MediaURL,
	})
	var rejected *connectorclient.RejectedError
	if errors.As(err, &rejected) {
		return fmt.Errorf("rejected (ref %s): %w", ref, err)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Created draft %d (ref %s)\n", result.PostID, ref)
	return nil
}

func randomRef(length int) (string, error) {
	raw := make([]byte, (length+1)/2)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw)[:length], nil
}
