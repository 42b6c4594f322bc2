// Package cost holds the elapsed-time and on-demand cost arithmetic used by
// the instance reports.
package cost

import (
	"fmt"
	"time"
)

// TotalHours is the time between launch and now counted in whole minutes and
// expressed in hours. An unknown (zero) or future launch time yields zero.
func TotalHours(launch, now time.Time) float64 {
	if launch.IsZero() {
		return 0
	}
	d := now.Sub(launch)
	if d <= 0 {
		return 0
	}
	minutes := int64(d / time.Minute)
	return float64(minutes/60) + float64(minutes%60)/60
}

// StartOfMonth is midnight on the first day of now's month, in now's location.
func StartOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// MonthlyHours is the part of the running time that falls in the current
// month.
func MonthlyHours(launch, now time.Time) float64 {
	if launch.IsZero() {
		return 0
	}
	first := StartOfMonth(now)
	if launch.After(first) {
		return TotalHours(launch, now)
	}
	return TotalHours(first, now)
}

func Compute(pricePerHour, hours float64) float64 {
	return pricePerHour * hours
}

// Estimate is the derived cost figures for one running resource.
type Estimate struct {
	LifeHours    float64
	MonthlyHours float64
	Monthly      float64
	Total        float64
}

func Estimated(pricePerHour float64, launch, now time.Time) Estimate {
	life := TotalHours(launch, now)
	month := MonthlyHours(launch, now)
	return Estimate{
		LifeHours:    life,
		MonthlyHours: month,
		Monthly:      Compute(pricePerHour, month),
		Total:        Compute(pricePerHour, life),
	}
}

func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2fHrs", hours)
}

func FormatUSD(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
