package services

import (
	"strings"

	"velvet-cone/models"
)

type DailyStats struct {
	OrdersCount int
	Revenue     float64
}

// StatsForDay tallies orders whose timestamp falls on the given day
// ("2006-01-02").
func StatsForDay(history []models.Order, day string) DailyStats {
	var s DailyStats
	for _, o := range history {
		if strings.HasPrefix(o.Timestamp, day) {
			s.OrdersCount++
			s.Revenue += o.Total
		}
	}
	return s
}
