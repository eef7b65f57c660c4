package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"newsmood/internal/app"
	"newsmood/internal/config"
	"newsmood/internal/digest"
	"newsmood/internal/logging"
)

func main() {
	topic := flag.String("topic", "", "news topic, e.g. Bitcoin")
	positiveOnly := flag.Bool("positive", false, "show positive items only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	_, err = logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	cfg.LogWarnings()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.Build(ctx, cfg)
	if err != nil {
		log.Fatalf("error building app: %v", err)
	}
	defer a.Close()

	res, err := a.Digest.Run(ctx, digest.Query{Topic: *topic, PositiveOnly: *positiveOnly})
	if err != nil {
		log.Fatalf("error running query: %v", err)
	}

	if res.Warning != "" {
		fmt.Println(res.Warning)
		return
	}

	if len(res.Items) == 0 {
		fmt.Println("No summaries match the sentiment filter.")
		return
	}

	fmt.Printf("Showing %d summaries for %q (%s):\n\n", len(res.Items), res.Topic, res.Source)
	for i, item := range res.Items {
		if item.Title != "" {
			fmt.Printf("%d. %s\n   %s\n", i+1, item.Title, item.Text)
		} else {
			fmt.Printf("%d. %s\n", i+1, item.Text)
		}
		fmt.Printf("   %s Sentiment: %s (%.2f)\n", item.Sentiment.Emoji(), item.Sentiment, item.Polarity)
		if item.URL != "" {
			fmt.Printf("   %s\n", item.URL)
		}
		fmt.Println()
	}
}
