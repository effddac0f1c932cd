package services

import (
	"MediTrack/models"
	"MediTrack/repositories"
	"context"
)

// placeholderMonthlyRevenue stands in until a billing data source
// exists; the figure is not computed from real data and callers must
// not treat it as authoritative.
const placeholderMonthlyRevenue = 24680

// DashboardStats is the operational snapshot for the landing page.
type DashboardStats struct {
	TotalPatients     int `json:"totalPatients"`
	TodayAppointments int `json:"todayAppointments"`
	CompletedToday    int `json:"completedToday"`
	RemainingToday    int `json:"remainingToday"`
	PendingReports    int `json:"pendingReports"`
	MonthlyRevenue    int `json:"monthlyRevenue"`
}

// DashboardService derives summary counts by re-querying storage; it
// keeps no state of its own.
type DashboardService struct {
	storage repositories.Storage
}

func NewDashboardService(storage repositories.Storage) *DashboardService {
	return &DashboardService{storage: storage}
}

func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	patients, err := s.storage.GetPatients(ctx)
	if err != nil {
		return nil, err
	}
	consultations, err := s.storage.GetConsultations(ctx)
	if err != nil {
		return nil, err
	}
	today, err := s.storage.GetTodayConsultations(ctx)
	if err != nil {
		return nil, err
	}

	completedToday := 0
	for _, c := range today {
		if c.Status == models.StatusCompleted {
			completedToday++
		}
	}

	// A consultation counts as a pending report until both diagnosis
	// and treatment are recorded, regardless of its date.
	pendingReports := 0
	for _, c := range consultations {
		if c.Diagnosis == "" || c.Treatment == "" {
			pendingReports++
		}
	}

	return &DashboardStats{
		TotalPatients:     len(patients),
		TodayAppointments: len(today),
		CompletedToday:    completedToday,
		RemainingToday:    len(today) - completedToday,
		PendingReports:    pendingReports,
		MonthlyRevenue:    placeholderMonthlyRevenue,
	}, nil
}
