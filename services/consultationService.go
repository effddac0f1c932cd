package services

import (
	"MediTrack/models"
	"MediTrack/repositories"
	"context"
)

type ConsultationService struct {
	storage repositories.Storage
}

func NewConsultationService(storage repositories.Storage) *ConsultationService {
	return &ConsultationService{storage: storage}
}

func (s *ConsultationService) Create(ctx context.Context, input *models.ConsultationInput) (*models.Consultation, error) {
	return s.storage.CreateConsultation(ctx, input)
}

func (s *ConsultationService) GetByID(ctx context.Context, id uint) (*models.Consultation, error) {
	return s.storage.GetConsultation(ctx, id)
}

func (s *ConsultationService) GetAll(ctx context.Context) ([]models.Consultation, error) {
	return s.storage.GetConsultations(ctx)
}

func (s *ConsultationService) GetByPatient(ctx context.Context, patientID uint) ([]models.Consultation, error) {
	return s.storage.GetConsultationsByPatient(ctx, patientID)
}

func (s *ConsultationService) GetToday(ctx context.Context) ([]models.Consultation, error) {
	return s.storage.GetTodayConsultations(ctx)
}

func (s *ConsultationService) Update(ctx context.Context, id uint, update *models.ConsultationUpdate) (*models.Consultation, error) {
	return s.storage.UpdateConsultation(ctx, id, update)
}

func (s *ConsultationService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.storage.DeleteConsultation(ctx, id)
}
