package services

import (
	"MediTrack/models"
	"MediTrack/repositories"
	"context"
)

type PatientService struct {
	storage repositories.Storage
}

func NewPatientService(storage repositories.Storage) *PatientService {
	return &PatientService{storage: storage}
}

func (s *PatientService) Create(ctx context.Context, input *models.PatientInput) (*models.Patient, error) {
	return s.storage.CreatePatient(ctx, input)
}

func (s *PatientService) GetByID(ctx context.Context, id uint) (*models.Patient, error) {
	return s.storage.GetPatient(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.storage.GetPatients(ctx)
}

func (s *PatientService) Update(ctx context.Context, id uint, update *models.PatientUpdate) (*models.Patient, error) {
	return s.storage.UpdatePatient(ctx, id, update)
}

func (s *PatientService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.storage.DeletePatient(ctx, id)
}

func (s *PatientService) Search(ctx context.Context, query string) ([]models.Patient, error) {
	return s.storage.SearchPatients(ctx, query)
}
