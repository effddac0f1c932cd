package utils

import (
	"MediTrack/models"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPatientInput() models.PatientInput {
	return models.PatientInput{
		FirstName:   "Ann",
		LastName:    "Lee",
		DateOfBirth: "1990-01-01",
		Gender:      models.GenderFemale,
		PhoneNumber: "555-1111",
	}
}

func fieldErrors(t *testing.T, err error) validation.Errors {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected per-field validation errors, got %T", err)
	return errs
}

func TestValidatePatientInput(t *testing.T) {
	t.Run("valid payload passes", func(t *testing.T) {
		in := validPatientInput()
		assert.NoError(t, ValidatePatientInput(&in))
	})

	t.Run("missing required fields are each reported", func(t *testing.T) {
		in := models.PatientInput{}
		errs := fieldErrors(t, ValidatePatientInput(&in))
		for _, field := range []string{"firstName", "lastName", "dateOfBirth", "gender", "phoneNumber"} {
			assert.Contains(t, errs, field)
		}
	})

	t.Run("gender outside the enumerated set is rejected", func(t *testing.T) {
		in := validPatientInput()
		in.Gender = "unknown"
		errs := fieldErrors(t, ValidatePatientInput(&in))
		assert.Contains(t, errs, "gender")
	})

	t.Run("malformed date of birth is rejected", func(t *testing.T) {
		in := validPatientInput()
		in.DateOfBirth = "01/01/1990"
		errs := fieldErrors(t, ValidatePatientInput(&in))
		assert.Contains(t, errs, "dateOfBirth")
	})

	t.Run("malformed email is rejected, empty email is fine", func(t *testing.T) {
		in := validPatientInput()
		in.Email = "not-an-email"
		errs := fieldErrors(t, ValidatePatientInput(&in))
		assert.Contains(t, errs, "email")

		in.Email = ""
		assert.NoError(t, ValidatePatientInput(&in))
	})
}

func TestValidatePatientUpdate(t *testing.T) {
	gender := "unknown"
	empty := ""
	valid := models.GenderMale

	t.Run("empty update passes", func(t *testing.T) {
		assert.NoError(t, ValidatePatientUpdate(&models.PatientUpdate{}))
	})

	t.Run("provided fields are validated", func(t *testing.T) {
		errs := fieldErrors(t, ValidatePatientUpdate(&models.PatientUpdate{Gender: &gender}))
		assert.Contains(t, errs, "gender")
	})

	t.Run("required-on-create fields cannot be blanked", func(t *testing.T) {
		errs := fieldErrors(t, ValidatePatientUpdate(&models.PatientUpdate{FirstName: &empty}))
		assert.Contains(t, errs, "firstName")
	})

	t.Run("valid partial update passes", func(t *testing.T) {
		assert.NoError(t, ValidatePatientUpdate(&models.PatientUpdate{Gender: &valid}))
	})
}

func TestValidateConsultationInput(t *testing.T) {
	valid := models.ConsultationInput{
		PatientID:        1,
		AppointmentDate:  time.Now(),
		ConsultationType: "Routine Checkup",
		Status:           models.StatusScheduled,
	}

	t.Run("valid payload passes", func(t *testing.T) {
		in := valid
		assert.NoError(t, ValidateConsultationInput(&in))
	})

	t.Run("missing required fields are each reported", func(t *testing.T) {
		in := models.ConsultationInput{}
		errs := fieldErrors(t, ValidateConsultationInput(&in))
		for _, field := range []string{"patientId", "appointmentDate", "consultationType", "status"} {
			assert.Contains(t, errs, field)
		}
	})

	t.Run("status outside the enumerated set is rejected", func(t *testing.T) {
		in := valid
		in.Status = "done"
		errs := fieldErrors(t, ValidateConsultationInput(&in))
		assert.Contains(t, errs, "status")
	})

	t.Run("malformed follow-up date is rejected", func(t *testing.T) {
		in := valid
		in.FollowUpDate = "next week"
		errs := fieldErrors(t, ValidateConsultationInput(&in))
		assert.Contains(t, errs, "followUpDate")
	})
}

func TestValidateConsultationUpdate(t *testing.T) {
	badStatus := "done"
	goodStatus := models.StatusCompleted
	var zeroPatient uint

	t.Run("empty update passes", func(t *testing.T) {
		assert.NoError(t, ValidateConsultationUpdate(&models.ConsultationUpdate{}))
	})

	t.Run("provided status is validated", func(t *testing.T) {
		errs := fieldErrors(t, ValidateConsultationUpdate(&models.ConsultationUpdate{Status: &badStatus}))
		assert.Contains(t, errs, "status")
	})

	t.Run("patient reference cannot be zeroed", func(t *testing.T) {
		errs := fieldErrors(t, ValidateConsultationUpdate(&models.ConsultationUpdate{PatientID: &zeroPatient}))
		assert.Contains(t, errs, "patientId")
	})

	t.Run("valid partial update passes", func(t *testing.T) {
		assert.NoError(t, ValidateConsultationUpdate(&models.ConsultationUpdate{Status: &goodStatus}))
	})
}
