package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"newsmood/db"
	"newsmood/internal/config"
	"newsmood/internal/logging"
	"newsmood/internal/model"
	"newsmood/internal/repository"
)

type queryLogReader interface {
	List(limit int) ([]model.QueryLogRecord, error)
}

func main() {
	limit := flag.Int("limit", 0, "only read the newest N records (0 reads all)")
	flag.Parse()

	cfg := config.LoadQueryLog()

	_, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		log.Fatalf("error setting up logging: %v", err)
	}
	cfg.LogWarnings()

	var reader queryLogReader = repository.NewCSVQueryLog(cfg.QueryLogPath)
	if cfg.DatabaseURL != "" {
		conn, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer conn.Close()
		reader = repository.NewQueryLogRepository(conn)
	}

	records, err := reader.List(*limit)
	if err != nil {
		log.Fatalf("error reading query log: %v", err)
	}

	if len(records) == 0 {
		slog.Info("query log is empty, exiting")
		return
	}

	stats := repository.TopicStats(records)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TOPIC\tQUERIES\tARTICLES\tAVG\tLAST QUERIED")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%.1f\t%s\n", s.Topic, s.Queries, s.ArticlesFound, s.AverageFound, s.LastQueriedAt.Format(time.RFC3339))
	}
	w.Flush()

	slog.Info("report complete", "records", len(records), "topics", len(stats))
}
