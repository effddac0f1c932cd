package services

import (
	"MediTrack/models"
	"MediTrack/repositories"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPatient(t *testing.T, storage repositories.Storage, first string) *models.Patient {
	t.Helper()
	patient, err := storage.CreatePatient(context.Background(), &models.PatientInput{
		FirstName:   first,
		LastName:    "Lee",
		DateOfBirth: "1990-01-01",
		Gender:      models.GenderFemale,
		PhoneNumber: "555-1111",
	})
	require.NoError(t, err)
	return patient
}

func seedConsultation(t *testing.T, storage repositories.Storage, patientID uint, at time.Time, status, diagnosis, treatment string) {
	t.Helper()
	_, err := storage.CreateConsultation(context.Background(), &models.ConsultationInput{
		PatientID:        patientID,
		AppointmentDate:  at,
		ConsultationType: "Routine Checkup",
		Status:           status,
		Diagnosis:        diagnosis,
		Treatment:        treatment,
	})
	require.NoError(t, err)
}

func TestDashboardStats(t *testing.T) {
	storage := repositories.NewMemoryRepository()
	service := NewDashboardService(storage)

	p1 := seedPatient(t, storage, "Ann")
	p2 := seedPatient(t, storage, "Bob")

	now := time.Now()
	past := now.AddDate(0, 0, -7)

	// Today: one completed with a full report, one still scheduled.
	seedConsultation(t, storage, p1.ID, now, models.StatusCompleted, "flu", "rest")
	seedConsultation(t, storage, p2.ID, now, models.StatusScheduled, "", "")
	// Past: diagnosis recorded but no treatment, so the report is
	// still pending; the other has both and is done.
	seedConsultation(t, storage, p1.ID, past, models.StatusCompleted, "sprain", "")
	seedConsultation(t, storage, p2.ID, past, models.StatusCompleted, "cold", "fluids")

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalPatients)
	assert.Equal(t, 2, stats.TodayAppointments)
	assert.Equal(t, 1, stats.CompletedToday)
	assert.Equal(t, 1, stats.RemainingToday)
	assert.Equal(t, 2, stats.PendingReports, "missing diagnosis or treatment both count")
	assert.Equal(t, placeholderMonthlyRevenue, stats.MonthlyRevenue)
}

func TestDashboardStats_Empty(t *testing.T) {
	service := NewDashboardService(repositories.NewMemoryRepository())

	stats, err := service.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalPatients)
	assert.Zero(t, stats.TodayAppointments)
	assert.Zero(t, stats.CompletedToday)
	assert.Zero(t, stats.RemainingToday)
	assert.Zero(t, stats.PendingReports)
}
