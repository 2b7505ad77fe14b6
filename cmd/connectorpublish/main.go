package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fr0stylo/contentconnector/pkg/connectorclient"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file loaded:", err)
	}
	v := viper.New()
	v.AutomaticEnv()

	endpoint := flag.String("endpoint", strings.TrimSpace(v.GetString("CONNECTOR_ENDPOINT")), "Connector base URL (or CONNECTOR_ENDPOINT)")
	apiKey := flag.String("api-key", strings.TrimSpace(v.GetString("CONNECTOR_API_KEY")), "Connector API key (or CONNECTOR_API_KEY)")
	prefix := flag.String("prefix", strings.TrimSpace(v.GetString("CONNECTOR_ROUTE_PREFIX")), "Route prefix (default /connector/v1)")
	title := flag.String("title", "", "Post title")
	description := flag.String("description", "", "Post body")
	tags := flag.String("tags", "", "Comma separated tags")
	category := flag.String("category", "", "Category name")
	mediaURL := flag.String("media-url", "", "Media URL stored on the draft")
	timeout := flag.Duration("timeout", 10*time.Second, "Request timeout")
	flag.Parse()

	if strings.TrimSpace(*endpoint) == "" || strings.TrimSpace(*apiKey) == "" {
		exitErr("endpoint/api-key are required (or set CONNECTOR_ENDPOINT, CONNECTOR_API_KEY)")
	}

	client := connectorclient.Client{
		Endpoint:    *endpoint,
		APIKey:      *apiKey,
		RoutePrefix: *prefix,
		Timeout:     *timeout,
	}
	result, err := client.Submit(context.Background(), connectorclient.Submission{
		Title:       *title,
		Description: *description,
		Tags:        splitTags(*tags),
		Category:    strings.TrimSpace(*category),
		MediaURL:    strings.TrimSpace(*mediaURL),
	})
	if err != nil {
		exitErr(err.Error())
	}

	fmt.Printf("Created draft post %d\n", result.PostID)
}

func splitTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func exitErr(message string) {
	fmt.Fprintln(os.Stderr, message)
	os.Exit(1)
}
