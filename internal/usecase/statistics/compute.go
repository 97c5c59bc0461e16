package statistics

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
)

// ======================================================
// OUTPUT
// ======================================================

type ServiceCount struct {
	ServiceID string `json:"service_id"`
	Count     int    `json:"count"`
}

type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type Report struct {
	TotalAppointments int `json:"total_appointments"`
	ConfirmedCount    int `json:"confirmed_count"`
	CompletedCount    int `json:"completed_count"`
	CanceledCount     int `json:"canceled_count"`

	CancellationRatePercent float64 `json:"cancellation_rate_percent"`

	// Sums the price snapshotted on each completed appointment, so later
	// catalog price edits never rewrite past revenue.
	TotalRevenue float64 `json:"total_revenue"`

	TopServices []ServiceCount `json:"top_services"`
	PeakHours   []HourCount    `json:"peak_hours"`
}

// ======================================================
// USE CASE
// ======================================================

type Compute struct {
	repo domain.Repository
}

func NewCompute(repo domain.Repository) *Compute {
	return &Compute{repo: repo}
}

// Execute aggregates over appointments with date in [from, to] inclusive.
// Soft-deleted records are included: hiding an old appointment from listings
// must not rewrite history.
func (uc *Compute) Execute(ctx context.Context, from, to string) (*Report, error) {

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		DateFrom:       from,
		DateTo:         to,
		IncludeDeleted: true,
	})
	if err != nil {
		return nil, err
	}

	report := &Report{
		TotalAppointments: len(apps),
		TopServices:       []ServiceCount{},
		PeakHours:         []HourCount{},
	}

	serviceCounts := make(map[string]int)
	var serviceOrder []string
	hourCounts := make(map[int]int)
	var hourOrder []int

	for _, ap := range apps {
		switch domain.Status(ap.Status) {
		case domain.StatusConfirmed:
			report.ConfirmedCount++
		case domain.StatusCanceled:
			report.CanceledCount++
		case domain.StatusCompleted:
			report.CompletedCount++
			report.TotalRevenue += ap.Price

			if _, seen := serviceCounts[ap.ServiceID]; !seen {
				serviceOrder = append(serviceOrder, ap.ServiceID)
			}
			serviceCounts[ap.ServiceID]++

			hour := hourOf(ap.Time)
			if _, seen := hourCounts[hour]; !seen {
				hourOrder = append(hourOrder, hour)
			}
			hourCounts[hour]++
		}
	}

	if report.TotalAppointments > 0 {
		rate := float64(report.CanceledCount) / float64(report.TotalAppointments) * 100
		report.CancellationRatePercent = math.Round(rate*10) / 10
	}

	// Stable sorts keep first-encountered order on ties.
	for _, id := range serviceOrder {
		report.TopServices = append(report.TopServices, ServiceCount{
			ServiceID: id,
			Count:     serviceCounts[id],
		})
	}
	sort.SliceStable(report.TopServices, func(i, j int) bool {
		return report.TopServices[i].Count > report.TopServices[j].Count
	})
	if len(report.TopServices) > 5 {
		report.TopServices = report.TopServices[:5]
	}

	for _, h := range hourOrder {
		report.PeakHours = append(report.PeakHours, HourCount{
			Hour:  h,
			Count: hourCounts[h],
		})
	}
	sort.SliceStable(report.PeakHours, func(i, j int) bool {
		return report.PeakHours[i].Count > report.PeakHours[j].Count
	})
	if len(report.PeakHours) > 5 {
		report.PeakHours = report.PeakHours[:5]
	}

	return report, nil
}

func hourOf(hm string) int {
	h, _, _ := strings.Cut(hm, ":")
	hour, _ := strconv.Atoi(h)
	return hour
}
