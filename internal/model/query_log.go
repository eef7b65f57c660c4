package model

import "time"

type QueryLogRecord struct {
	Topic         string
	ArticlesFound int
	Timestamp     time.Time
}

type TopicStat struct {
	Topic         string
	Queries       int
	ArticlesFound int
	AverageFound  float64
	LastQueriedAt time.Time
}
