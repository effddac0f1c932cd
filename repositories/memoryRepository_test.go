package repositories

import (
	"MediTrack/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientInput(first, last, phone string) *models.PatientInput {
	return &models.PatientInput{
		FirstName:   first,
		LastName:    last,
		DateOfBirth: "1990-01-01",
		Gender:      models.GenderFemale,
		PhoneNumber: phone,
	}
}

func newConsultationInput(patientID uint, at time.Time) *models.ConsultationInput {
	return &models.ConsultationInput{
		PatientID:        patientID,
		AppointmentDate:  at,
		ConsultationType: "Routine Checkup",
		Status:           models.StatusScheduled,
	}
}

func strPtr(s string) *string { return &s }

func TestMemoryRepository_CreatePatient(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	first, err := m.CreatePatient(ctx, newPatientInput("Ann", "Lee", "555-1111"))
	require.NoError(t, err)
	second, err := m.CreatePatient(ctx, newPatientInput("Bob", "Ray", "555-2222"))
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)
	assert.Greater(t, second.ID, first.ID, "ids must increase monotonically")
	assert.False(t, first.CreatedAt.IsZero(), "createdAt is assigned by storage")
}

func TestMemoryRepository_GetPatients_MostRecentFirst(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	clock := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	m.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := m.CreatePatient(ctx, newPatientInput(name, "Person", "555-0000"))
		require.NoError(t, err)
	}

	patients, err := m.GetPatients(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "Third", patients[0].FirstName)
	assert.Equal(t, "Second", patients[1].FirstName)
	assert.Equal(t, "First", patients[2].FirstName)
}

func TestMemoryRepository_UpdatePatient(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	created, err := m.CreatePatient(ctx, newPatientInput("Ann", "Lee", "555-1111"))
	require.NoError(t, err)

	t.Run("merges provided fields only", func(t *testing.T) {
		updated, err := m.UpdatePatient(ctx, created.ID, &models.PatientUpdate{
			LastName: strPtr("Smith"),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Smith", updated.LastName)
		assert.Equal(t, "Ann", updated.FirstName, "absent fields keep their value")
		assert.Equal(t, "555-1111", updated.PhoneNumber)
		assert.Equal(t, created.ID, updated.ID)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt), "createdAt never changes")
	})

	t.Run("unknown id reports not found", func(t *testing.T) {
		updated, err := m.UpdatePatient(ctx, 999, &models.PatientUpdate{LastName: strPtr("X")})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestMemoryRepository_DeletePatient_Cascades(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	patient, err := m.CreatePatient(ctx, newPatientInput("Ann", "Lee", "555-1111"))
	require.NoError(t, err)
	other, err := m.CreatePatient(ctx, newPatientInput("Bob", "Ray", "555-2222"))
	require.NoError(t, err)

	at := time.Now()
	var cascaded []uint
	for i := 0; i < 3; i++ {
		c, err := m.CreateConsultation(ctx, newConsultationInput(patient.ID, at))
		require.NoError(t, err)
		cascaded = append(cascaded, c.ID)
	}
	kept, err := m.CreateConsultation(ctx, newConsultationInput(other.ID, at))
	require.NoError(t, err)

	deleted, err := m.DeletePatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := m.GetPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	for _, id := range cascaded {
		c, err := m.GetConsultation(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, c, "cascade removes every consultation of the patient")
	}

	remaining, err := m.GetConsultation(ctx, kept.ID)
	require.NoError(t, err)
	assert.NotNil(t, remaining, "other patients' consultations survive")

	deleted, err = m.DeletePatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "deleting a nonexistent patient reports not found")
}

func TestMemoryRepository_DeleteConsultation(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	patient, err := m.CreatePatient(ctx, newPatientInput("Ann", "Lee", "555-1111"))
	require.NoError(t, err)
	consultation, err := m.CreateConsultation(ctx, newConsultationInput(patient.ID, time.Now()))
	require.NoError(t, err)

	deleted, err := m.DeleteConsultation(ctx, consultation.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	stillThere, err := m.GetPatient(ctx, patient.ID)
	require.NoError(t, err)
	assert.NotNil(t, stillThere, "consultation deletion does not cascade")

	deleted, err = m.DeleteConsultation(ctx, consultation.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryRepository_SearchPatients(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	_, err := m.CreatePatient(ctx, newPatientInput("John", "Smith", "555-1234"))
	require.NoError(t, err)
	_, err = m.CreatePatient(ctx, newPatientInput("Mary", "smith-Jones", "212-9876"))
	require.NoError(t, err)
	withEmail := newPatientInput("Carl", "Brown", "333-0000")
	withEmail.Email = "carl.smith@example.com"
	_, err = m.CreatePatient(ctx, withEmail)
	require.NoError(t, err)

	t.Run("names and email match case-insensitively", func(t *testing.T) {
		results, err := m.SearchPatients(ctx, "SMITH")
		require.NoError(t, err)
		assert.Len(t, results, 3)
	})

	t.Run("phone matches as literal substring", func(t *testing.T) {
		results, err := m.SearchPatients(ctx, "555")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "John", results[0].FirstName)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		results, err := m.SearchPatients(ctx, "zzz")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestMemoryRepository_GetTodayConsultations(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	fixed := time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)
	m.now = func() time.Time { return fixed }

	patient, err := m.CreatePatient(ctx, newPatientInput("Ann", "Lee", "555-1111"))
	require.NoError(t, err)

	lastNight := time.Date(2025, 3, 9, 23, 59, 59, 0, time.Local)
	midnight := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	noon := time.Date(2025, 3, 10, 12, 0, 0, 0, time.Local)
	tomorrow := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)

	// Insert out of order to exercise the ascending sort.
	_, err = m.CreateConsultation(ctx, newConsultationInput(patient.ID, noon))
	require.NoError(t, err)
	_, err = m.CreateConsultation(ctx, newConsultationInput(patient.ID, lastNight))
	require.NoError(t, err)
	_, err = m.CreateConsultation(ctx, newConsultationInput(patient.ID, tomorrow))
	require.NoError(t, err)
	_, err = m.CreateConsultation(ctx, newConsultationInput(patient.ID, midnight))
	require.NoError(t, err)

	today, err := m.GetTodayConsultations(ctx)
	require.NoError(t, err)
	require.Len(t, today, 2, "window is [local midnight, next local midnight)")
	assert.True(t, today[0].AppointmentDate.Equal(midnight), "earliest first")
	assert.True(t, today[1].AppointmentDate.Equal(noon))
}

func TestMemoryRepository_ConsultationListOrdering(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	patient, err := m.CreatePatient(ctx, newPatientInput("Ann", "Lee", "555-1111"))
	require.NoError(t, err)

	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	early, err := m.CreateConsultation(ctx, newConsultationInput(patient.ID, base))
	require.NoError(t, err)
	late, err := m.CreateConsultation(ctx, newConsultationInput(patient.ID, base.Add(2*time.Hour)))
	require.NoError(t, err)

	all, err := m.GetConsultations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, late.ID, all[0].ID, "most recent appointment first")
	assert.Equal(t, early.ID, all[1].ID)

	byPatient, err := m.GetConsultationsByPatient(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, byPatient, 2)
	assert.Equal(t, late.ID, byPatient[0].ID)

	none, err := m.GetConsultationsByPatient(ctx, 999)
	require.NoError(t, err)
	assert.Empty(t, none)
}
