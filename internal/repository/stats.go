package repository

import (
	"sort"

	"newsmood/internal/model"
)

// TopicStats groups records by topic, most queried first.
func TopicStats(records []model.QueryLogRecord) []model.TopicStat {
	byTopic := make(map[string]*model.TopicStat)
	var order []string

	for _, rec := range records {
		stat, ok := byTopic[rec.Topic]
		if !ok {
			stat = &model.TopicStat{Topic: rec.Topic}
			byTopic[rec.Topic] = stat
			order = append(order, rec.Topic)
		}

		stat.Queries++
		stat.ArticlesFound += rec.ArticlesFound
		if rec.Timestamp.After(stat.LastQueriedAt) {
			stat.LastQueriedAt = rec.Timestamp
		}
	}

	stats := make([]model.TopicStat, 0, len(order))
	for _, topic := range order {
		stat := byTopic[topic]
		stat.AverageFound = float64(stat.ArticlesFound) / float64(stat.Queries)
		stats = append(stats, *stat)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Queries != stats[j].Queries {
			return stats[i].Queries > stats[j].Queries
		}
		return stats[i].Topic < stats[j].Topic
	})

	return stats
}
