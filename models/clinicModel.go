package models

import (
	"time"
)

// Gender values accepted on a patient record.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Consultation lifecycle states.
const (
	StatusScheduled  = "scheduled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Patient model
type Patient struct {
	ID                 uint           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	FirstName          string         `gorm:"column:first_name;not null" json:"firstName"`
	LastName           string         `gorm:"column:last_name;not null;index" json:"lastName"`
	DateOfBirth        string         `gorm:"column:date_of_birth;not null" json:"dateOfBirth"`
	Gender             string         `gorm:"column:gender;check:gender IN ('male', 'female', 'other');not null" json:"gender"`
	PhoneNumber        string         `gorm:"column:phone_number;not null" json:"phoneNumber"`
	Email              string         `gorm:"column:email" json:"email"`
	Address            string         `gorm:"column:address" json:"address"`
	BloodType          string         `gorm:"column:blood_type" json:"bloodType"`
	EmergencyContact   string         `gorm:"column:emergency_contact" json:"emergencyContact"`
	Allergies          string         `gorm:"column:allergies" json:"allergies"`
	CurrentMedications string         `gorm:"column:current_medications" json:"currentMedications"`
	InsuranceProvider  string         `gorm:"column:insurance_provider" json:"insuranceProvider"`
	PolicyNumber       string         `gorm:"column:policy_number" json:"policyNumber"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Consultations      []Consultation `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// Consultation model
type Consultation struct {
	ID               uint      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID        uint      `gorm:"column:patient_id;not null;index" json:"patientId"`
	AppointmentDate  time.Time `gorm:"column:appointment_date;not null;index" json:"appointmentDate"`
	ConsultationType string    `gorm:"column:consultation_type;not null" json:"consultationType"`
	Status           string    `gorm:"column:status;check:status IN ('scheduled', 'in-progress', 'completed', 'cancelled');not null" json:"status"`
	Notes            string    `gorm:"column:notes" json:"notes"`
	Diagnosis        string    `gorm:"column:diagnosis" json:"diagnosis"`
	Treatment        string    `gorm:"column:treatment" json:"treatment"`
	Prescriptions    string    `gorm:"column:prescriptions" json:"prescriptions"`
	FollowUpDate     string    `gorm:"column:follow_up_date" json:"followUpDate"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	Patient          Patient   `gorm:"foreignKey:PatientID;references:ID" json:"-"`
}

func (Consultation) TableName() string {
	return "consultations"
}
