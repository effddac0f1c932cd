package repositories

import (
	"MediTrack/models"
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryRepository is an ephemeral, process-local Storage backend.
// Nothing survives a restart; it exists for development and tests. A
// single mutex guards the maps, so each operation (the patient cascade
// delete included) runs as one critical section.
type MemoryRepository struct {
	mu                 sync.Mutex
	patients           map[uint]models.Patient
	consultations      map[uint]models.Consultation
	nextPatientID      uint
	nextConsultationID uint
	now                func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		patients:           make(map[uint]models.Patient),
		consultations:      make(map[uint]models.Consultation),
		nextPatientID:      1,
		nextConsultationID: 1,
		now:                time.Now,
	}
}

func (m *MemoryRepository) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	patient, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (m *MemoryRepository) GetPatients(ctx context.Context) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collectPatients(func(models.Patient) bool { return true }), nil
}

func (m *MemoryRepository) CreatePatient(ctx context.Context, input *models.PatientInput) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	patient := input.ToPatient()
	patient.ID = m.nextPatientID
	m.nextPatientID++
	patient.CreatedAt = m.now()
	m.patients[patient.ID] = patient
	return &patient, nil
}

func (m *MemoryRepository) UpdatePatient(ctx context.Context, id uint, update *models.PatientUpdate) (*models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	patient, ok := m.patients[id]
	if !ok {
		return nil, nil
	}
	update.Apply(&patient)
	m.patients[id] = patient
	return &patient, nil
}

// DeletePatient removes the patient and every consultation that
// references it.
func (m *MemoryRepository) DeletePatient(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.patients[id]; !ok {
		return false, nil
	}
	for cid, consultation := range m.consultations {
		if consultation.PatientID == id {
			delete(m.consultations, cid)
		}
	}
	delete(m.patients, id)
	return true, nil
}

// SearchPatients matches the query case-insensitively against first
// name, last name and email. Phone numbers are matched as a literal
// substring of the stored string, digits are not normalized.
func (m *MemoryRepository) SearchPatients(ctx context.Context, query string) ([]models.Patient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lower := strings.ToLower(query)
	return m.collectPatients(func(p models.Patient) bool {
		return strings.Contains(strings.ToLower(p.FirstName), lower) ||
			strings.Contains(strings.ToLower(p.LastName), lower) ||
			strings.Contains(p.PhoneNumber, query) ||
			(p.Email != "" && strings.Contains(strings.ToLower(p.Email), lower))
	}), nil
}

// collectPatients returns matching patients ordered by creation time,
// most recent first. Callers must hold the mutex.
func (m *MemoryRepository) collectPatients(match func(models.Patient) bool) []models.Patient {
	patients := make([]models.Patient, 0, len(m.patients))
	for _, patient := range m.patients {
		if match(patient) {
			patients = append(patients, patient)
		}
	}
	sort.Slice(patients, func(i, j int) bool {
		if patients[i].CreatedAt.Equal(patients[j].CreatedAt) {
			return patients[i].ID > patients[j].ID
		}
		return patients[i].CreatedAt.After(patients[j].CreatedAt)
	})
	return patients
}

func (m *MemoryRepository) GetConsultation(ctx context.Context, id uint) (*models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	consultation, ok := m.consultations[id]
	if !ok {
		return nil, nil
	}
	return &consultation, nil
}

func (m *MemoryRepository) GetConsultations(ctx context.Context) ([]models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collectConsultations(func(models.Consultation) bool { return true }, false), nil
}

func (m *MemoryRepository) GetConsultationsByPatient(ctx context.Context, patientID uint) ([]models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.collectConsultations(func(c models.Consultation) bool {
		return c.PatientID == patientID
	}, false), nil
}

func (m *MemoryRepository) CreateConsultation(ctx context.Context, input *models.ConsultationInput) (*models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	consultation := input.ToConsultation()
	consultation.ID = m.nextConsultationID
	m.nextConsultationID++
	consultation.CreatedAt = m.now()
	m.consultations[consultation.ID] = consultation
	return &consultation, nil
}

func (m *MemoryRepository) UpdateConsultation(ctx context.Context, id uint, update *models.ConsultationUpdate) (*models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	consultation, ok := m.consultations[id]
	if !ok {
		return nil, nil
	}
	update.Apply(&consultation)
	m.consultations[id] = consultation
	return &consultation, nil
}

func (m *MemoryRepository) DeleteConsultation(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.consultations[id]; !ok {
		return false, nil
	}
	delete(m.consultations, id)
	return true, nil
}

// GetTodayConsultations returns consultations inside the local
// calendar day, earliest first, since this listing drives the same-day
// schedule.
func (m *MemoryRepository) GetTodayConsultations(ctx context.Context) ([]models.Consultation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start, end := todayWindow(m.now())
	return m.collectConsultations(func(c models.Consultation) bool {
		return !c.AppointmentDate.Before(start) && c.AppointmentDate.Before(end)
	}, true), nil
}

// collectConsultations returns matching consultations ordered by
// appointment time, most recent first unless ascending is set. Callers
// must hold the mutex.
func (m *MemoryRepository) collectConsultations(match func(models.Consultation) bool, ascending bool) []models.Consultation {
	consultations := make([]models.Consultation, 0, len(m.consultations))
	for _, consultation := range m.consultations {
		if match(consultation) {
			consultations = append(consultations, consultation)
		}
	}
	sort.Slice(consultations, func(i, j int) bool {
		a, b := consultations[i], consultations[j]
		if a.AppointmentDate.Equal(b.AppointmentDate) {
			if ascending {
				return a.ID < b.ID
			}
			return a.ID > b.ID
		}
		if ascending {
			return a.AppointmentDate.Before(b.AppointmentDate)
		}
		return a.AppointmentDate.After(b.AppointmentDate)
	})
	return consultations
}
