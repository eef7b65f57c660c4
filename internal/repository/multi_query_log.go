package repository

import (
	"errors"

	"newsmood/internal/model"
)

type QueryLogWriter interface {
	Append(record model.QueryLogRecord) error
}

// MultiQueryLog writes every record to all sinks, even when one fails.
type MultiQueryLog struct {
	sinks []QueryLogWriter
}

func NewMultiQueryLog(sinks ...QueryLogWriter) *MultiQueryLog {
	return &MultiQueryLog{sinks: sinks}
}

func (m *MultiQueryLog) Append(record model.QueryLogRecord) error {
	var errs []error
	for _, sink := range m.sinks {
		if err := sink.Append(record); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
