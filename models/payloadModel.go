package models

import (
	"time"
)

// PatientInput is the payload accepted when creating a patient. ID and
// CreatedAt are assigned by storage and cannot be supplied by callers.
type PatientInput struct {
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	DateOfBirth        string `json:"dateOfBirth"`
	Gender             string `json:"gender"`
	PhoneNumber        string `json:"phoneNumber"`
	Email              string `json:"email"`
	Address            string `json:"address"`
	BloodType          string `json:"bloodType"`
	EmergencyContact   string `json:"emergencyContact"`
	Allergies          string `json:"allergies"`
	CurrentMedications string `json:"currentMedications"`
	InsuranceProvider  string `json:"insuranceProvider"`
	PolicyNumber       string `json:"policyNumber"`
}

// ToPatient builds a new Patient record from the payload.
func (in *PatientInput) ToPatient() Patient {
	return Patient{
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		DateOfBirth:        in.DateOfBirth,
		Gender:             in.Gender,
		PhoneNumber:        in.PhoneNumber,
		Email:              in.Email,
		Address:            in.Address,
		BloodType:          in.BloodType,
		EmergencyContact:   in.EmergencyContact,
		Allergies:          in.Allergies,
		CurrentMedications: in.CurrentMedications,
		InsuranceProvider:  in.InsuranceProvider,
		PolicyNumber:       in.PolicyNumber,
	}
}

// PatientUpdate is a partial patient payload. Only non-nil fields are
// applied; absent fields leave existing values untouched.
type PatientUpdate struct {
	FirstName          *string `json:"firstName"`
	LastName           *string `json:"lastName"`
	DateOfBirth        *string `json:"dateOfBirth"`
	Gender             *string `json:"gender"`
	PhoneNumber        *string `json:"phoneNumber"`
	Email              *string `json:"email"`
	Address            *string `json:"address"`
	BloodType          *string `json:"bloodType"`
	EmergencyContact   *string `json:"emergencyContact"`
	Allergies          *string `json:"allergies"`
	CurrentMedications *string `json:"currentMedications"`
	InsuranceProvider  *string `json:"insuranceProvider"`
	PolicyNumber       *string `json:"policyNumber"`
}

// Apply merges the provided fields onto an existing record. ID and
// CreatedAt are never touched.
func (u *PatientUpdate) Apply(p *Patient) {
	if u.FirstName != nil {
		p.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		p.LastName = *u.LastName
	}
	if u.DateOfBirth != nil {
		p.DateOfBirth = *u.DateOfBirth
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.PhoneNumber != nil {
		p.PhoneNumber = *u.PhoneNumber
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Address != nil {
		p.Address = *u.Address
	}
	if u.BloodType != nil {
		p.BloodType = *u.BloodType
	}
	if u.EmergencyContact != nil {
		p.EmergencyContact = *u.EmergencyContact
	}
	if u.Allergies != nil {
		p.Allergies = *u.Allergies
	}
	if u.CurrentMedications != nil {
		p.CurrentMedications = *u.CurrentMedications
	}
	if u.InsuranceProvider != nil {
		p.InsuranceProvider = *u.InsuranceProvider
	}
	if u.PolicyNumber != nil {
		p.PolicyNumber = *u.PolicyNumber
	}
}

// ConsultationInput is the payload accepted when creating a
// consultation.
type ConsultationInput struct {
	PatientID        uint      `json:"patientId"`
	AppointmentDate  time.Time `json:"appointmentDate"`
	ConsultationType string    `json:"consultationType"`
	Status           string    `json:"status"`
	Notes            string    `json:"notes"`
	Diagnosis        string    `json:"diagnosis"`
	Treatment        string    `json:"treatment"`
	Prescriptions    string    `json:"prescriptions"`
	FollowUpDate     string    `json:"followUpDate"`
}

// ToConsultation builds a new Consultation record from the payload.
func (in *ConsultationInput) ToConsultation() Consultation {
	return Consultation{
		PatientID:        in.PatientID,
		AppointmentDate:  in.AppointmentDate,
		ConsultationType: in.ConsultationType,
		Status:           in.Status,
		Notes:            in.Notes,
		Diagnosis:        in.Diagnosis,
		Treatment:        in.Treatment,
		Prescriptions:    in.Prescriptions,
		FollowUpDate:     in.FollowUpDate,
	}
}

// ConsultationUpdate is a partial consultation payload.
type ConsultationUpdate struct {
	PatientID        *uint      `json:"patientId"`
	AppointmentDate  *time.Time `json:"appointmentDate"`
	ConsultationType *string    `json:"consultationType"`
	Status           *string    `json:"status"`
	Notes            *string    `json:"notes"`
	Diagnosis        *string    `json:"diagnosis"`
	Treatment        *string    `json:"treatment"`
	Prescriptions    *string    `json:"prescriptions"`
	FollowUpDate     *string    `json:"followUpDate"`
}

// Apply merges the provided fields onto an existing record.
func (u *ConsultationUpdate) Apply(c *Consultation) {
	if u.PatientID != nil {
		c.PatientID = *u.PatientID
	}
	if u.AppointmentDate != nil {
		c.AppointmentDate = *u.AppointmentDate
	}
	if u.ConsultationType != nil {
		c.ConsultationType = *u.ConsultationType
	}
	if u.Status != nil {
		c.Status = *u.Status
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.Diagnosis != nil {
		c.Diagnosis = *u.Diagnosis
	}
	if u.Treatment != nil {
		c.Treatment = *u.Treatment
	}
	if u.Prescriptions != nil {
		c.Prescriptions = *u.Prescriptions
	}
	if u.FollowUpDate != nil {
		c.FollowUpDate = *u.FollowUpDate
	}
}
