package utils

import (
	"MediTrack/models"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

// ValidatePatientInput validates a patient creation payload. Every
// required field must be present; gender must be one of the accepted
// values.
func ValidatePatientInput(in *models.PatientInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.FirstName, validation.Required),
		validation.Field(&in.LastName, validation.Required),
		validation.Field(&in.DateOfBirth, validation.Required, validation.Date(dateLayout)),
		validation.Field(&in.Gender, validation.Required, validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&in.PhoneNumber, validation.Required),
		validation.Field(&in.Email, is.Email),
	)
}

// ValidatePatientUpdate validates a partial patient payload. Absent
// fields are skipped; fields that are required on creation must not be
// blanked out.
func ValidatePatientUpdate(u *models.PatientUpdate) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.FirstName, validation.NilOrNotEmpty),
		validation.Field(&u.LastName, validation.NilOrNotEmpty),
		validation.Field(&u.DateOfBirth, validation.NilOrNotEmpty, validation.Date(dateLayout)),
		validation.Field(&u.Gender, validation.NilOrNotEmpty, validation.In(models.GenderMale, models.GenderFemale, models.GenderOther)),
		validation.Field(&u.PhoneNumber, validation.NilOrNotEmpty),
		validation.Field(&u.Email, is.Email),
	)
}

// ValidateConsultationInput validates a consultation creation payload.
func ValidateConsultationInput(in *models.ConsultationInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.PatientID, validation.Required),
		validation.Field(&in.AppointmentDate, validation.Required),
		validation.Field(&in.ConsultationType, validation.Required),
		validation.Field(&in.Status, validation.Required, validation.In(models.StatusScheduled, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled)),
		validation.Field(&in.FollowUpDate, validation.Date(dateLayout)),
	)
}

// ValidateConsultationUpdate validates a partial consultation payload.
func ValidateConsultationUpdate(u *models.ConsultationUpdate) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.PatientID, validation.NilOrNotEmpty),
		validation.Field(&u.AppointmentDate, validation.NilOrNotEmpty),
		validation.Field(&u.ConsultationType, validation.NilOrNotEmpty),
		validation.Field(&u.Status, validation.NilOrNotEmpty, validation.In(models.StatusScheduled, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled)),
		validation.Field(&u.FollowUpDate, validation.Date(dateLayout)),
	)
}
