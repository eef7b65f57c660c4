package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"sync"
	"time"

	"newsmood/internal/model"
)

var csvHeader = []string{"topic", "articles_found", "timestamp"}

// Older logs were written with naive ISO timestamps without a zone.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
}

// CSVQueryLog appends query records to a flat file. Appends are serialized
// within the process only.
type CSVQueryLog struct {
	path string
	mu   sync.Mutex
}

func NewCSVQueryLog(path string) *CSVQueryLog {
	return &CSVQueryLog{path: path}
}

func (l *CSVQueryLog) Path() string {
	return l.path
}

func (l *CSVQueryLog) Append(record model.QueryLogRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	writeHeader := false
	info, err := os.Stat(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		writeHeader = true
	case err != nil:
		return fmt.Errorf("query log stat: %w", err)
	case info.Size() == 0:
		writeHeader = true
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("query log open: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if writeHeader {
		w.Write(csvHeader)
	}
	w.Write([]string{
		record.Topic,
		strconv.Itoa(record.ArticlesFound),
		record.Timestamp.Format(time.RFC3339),
	})
	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("query log write: %w", err)
	}

	return f.Sync()
}

// List returns up to limit records, newest first. A limit of zero or less
// returns everything. A missing file is an empty log.
func (l *CSVQueryLog) List(limit int) ([]model.QueryLogRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query log open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("query log read: %w", err)
	}

	var records []model.QueryLogRecord
	for i, row := range rows {
		if i == 0 && row[0] == csvHeader[0] {
			continue
		}

		count, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("query log line %d: %w", i+1, err)
		}

		ts, err := parseTimestamp(row[2])
		if err != nil {
			return nil, fmt.Errorf("query log line %d: %w", i+1, err)
		}

		records = append(records, model.QueryLogRecord{
			Topic:         row[0],
			ArticlesFound: count,
			Timestamp:     ts,
		})
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}

func (l *CSVQueryLog) Count() (int, error) {
	records, err := l.List(0)
	return len(records), err
}

func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, s)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}
