package repositories

import (
	"MediTrack/models"
	"context"
	"time"
)

// Storage is the capability set shared by every backend. Lookups
// return (nil, nil) when no record matches; deletes report whether the
// record existed. Callers depend only on this interface so the
// in-memory backend can stand in for the database one.
type Storage interface {
	GetPatient(ctx context.Context, id uint) (*models.Patient, error)
	GetPatients(ctx context.Context) ([]models.Patient, error)
	CreatePatient(ctx context.Context, input *models.PatientInput) (*models.Patient, error)
	UpdatePatient(ctx context.Context, id uint, update *models.PatientUpdate) (*models.Patient, error)
	DeletePatient(ctx context.Context, id uint) (bool, error)
	SearchPatients(ctx context.Context, query string) ([]models.Patient, error)

	GetConsultation(ctx context.Context, id uint) (*models.Consultation, error)
	GetConsultations(ctx context.Context) ([]models.Consultation, error)
	GetConsultationsByPatient(ctx context.Context, patientID uint) ([]models.Consultation, error)
	CreateConsultation(ctx context.Context, input *models.ConsultationInput) (*models.Consultation, error)
	UpdateConsultation(ctx context.Context, id uint, update *models.ConsultationUpdate) (*models.Consultation, error)
	DeleteConsultation(ctx context.Context, id uint) (bool, error)
	GetTodayConsultations(ctx context.Context) ([]models.Consultation, error)
}

// todayWindow returns the local calendar-day bounds [start, end) for
// the given instant. A consultation at 23:59:59 the day before or at
// exactly the next midnight falls outside the window.
func todayWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}
