// Package earnings aggregates raw earnings records into the time series
// served to provider dashboards.
package earnings

import (
	"time"

	"localserve/models"
)

const dateLayout = "2006-01-02"

// Period values accepted by Report.
const (
	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
)

// Report buckets earnings per day over the requested period. Weekly reports
// return exactly seven buckets, oldest first, labeled by weekday. Any other
// period gets monthly buckets: the last thirty days keeping only days with
// earnings, labeled "02 Jan". The caller's period value is echoed back
// unchanged.
func Report(records []models.EarningsRecord, period string, today time.Time) models.EarningsReport {
	byDate := map[string]int{}
	for _, r := range records {
		byDate[r.Date] += r.Amount
	}

	var data []models.EarningsBucket
	if period == PeriodWeekly {
		data = []models.EarningsBucket{}
		for i := 0; i < 7; i++ {
			date := today.AddDate(0, 0, -(6 - i))
			data = append(data, models.EarningsBucket{
				Date:   date.Format("Mon"),
				Amount: byDate[date.Format(dateLayout)],
			})
		}
	} else {
		data = []models.EarningsBucket{}
		for i := 0; i < 30; i++ {
			date := today.AddDate(0, 0, -(29 - i))
			amount := byDate[date.Format(dateLayout)]
			if amount > 0 {
				data = append(data, models.EarningsBucket{
					Date:   date.Format("02 Jan"),
					Amount: amount,
				})
			}
		}
	}

	totalPeriod := 0
	for _, b := range data {
		totalPeriod += b.Amount
	}

	return models.EarningsReport{
		Data:        data,
		TotalToday:  byDate[today.Format(dateLayout)],
		TotalPeriod: totalPeriod,
		Period:      period,
	}
}
