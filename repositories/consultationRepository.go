package repositories

import (
	"MediTrack/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

const (
	consultationCacheExpiry = 24 * time.Hour
	consultationsCacheKey   = "consultations_cache"
)

func consultationCacheKey(id uint) string {
	return fmt.Sprintf("consultation_cache:%d", id)
}

func (r *DatabaseRepository) GetConsultation(ctx context.Context, id uint) (*models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := consultationCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err != nil {
		log.Printf("Failed to get consultation from cache: %v", err)
	} else if cached != "" {
		var consultation models.Consultation
		if err := json.Unmarshal([]byte(cached), &consultation); err == nil {
			return &consultation, nil
		}
	}

	var consultation models.Consultation
	if err := r.db.WithContext(ctx).First(&consultation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}

	r.cachePut(ctx, cacheKey, consultation, consultationCacheExpiry)
	return &consultation, nil
}

func (r *DatabaseRepository) GetConsultations(ctx context.Context) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cached, err := r.cache.Get(ctx, consultationsCacheKey); err != nil {
		log.Printf("Failed to get consultations from cache: %v", err)
	} else if cached != "" {
		var consultations []models.Consultation
		if err := json.Unmarshal([]byte(cached), &consultations); err == nil {
			return nonNilConsultations(consultations), nil
		}
	}

	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Order("appointment_date DESC, id DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all consultations: %w", err)
	}

	consultations = nonNilConsultations(consultations)
	r.cachePut(ctx, consultationsCacheKey, consultations, consultationCacheExpiry)
	return consultations, nil
}

func (r *DatabaseRepository) GetConsultationsByPatient(ctx context.Context, patientID uint) ([]models.Consultation, error) {
	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("appointment_date DESC, id DESC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get patient consultations: %w", err)
	}
	return nonNilConsultations(consultations), nil
}

// CreateConsultation inserts the record; the patients foreign key
// rejects a patientId that references no existing patient.
func (r *DatabaseRepository) CreateConsultation(ctx context.Context, input *models.ConsultationInput) (*models.Consultation, error) {
	consultation := input.ToConsultation()
	if err := r.db.WithContext(ctx).Create(&consultation).Error; err != nil {
		return nil, fmt.Errorf("failed to create consultation: %w", err)
	}
	// A fresh record has no per-id cache entry yet; only the list is stale.
	r.invalidateConsultationList(ctx)
	return &consultation, nil
}

func (r *DatabaseRepository) UpdateConsultation(ctx context.Context, id uint, update *models.ConsultationUpdate) (*models.Consultation, error) {
	var consultation models.Consultation
	if err := r.db.WithContext(ctx).First(&consultation, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get consultation: %w", err)
	}

	update.Apply(&consultation)
	if err := r.db.WithContext(ctx).Omit("created_at").Save(&consultation).Error; err != nil {
		return nil, fmt.Errorf("failed to update consultation: %w", err)
	}
	r.invalidateConsultationCache(ctx, id)
	return &consultation, nil
}

func (r *DatabaseRepository) DeleteConsultation(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Consultation{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete consultation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	r.invalidateConsultationCache(ctx, id)
	return true, nil
}

// GetTodayConsultations returns consultations inside the local
// calendar day, earliest first. Not cached: the window moves with the
// clock.
func (r *DatabaseRepository) GetTodayConsultations(ctx context.Context) ([]models.Consultation, error) {
	start, end := todayWindow(time.Now())
	var consultations []models.Consultation
	err := r.db.WithContext(ctx).
		Where("appointment_date >= ? AND appointment_date < ?", start, end).
		Order("appointment_date ASC, id ASC").
		Find(&consultations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get today's consultations: %w", err)
	}
	return nonNilConsultations(consultations), nil
}

// See nonNilPatients; same rule for consultation listings.
func nonNilConsultations(consultations []models.Consultation) []models.Consultation {
	if consultations == nil {
		return []models.Consultation{}
	}
	return consultations
}

func (r *DatabaseRepository) invalidateConsultationCache(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, consultationCacheKey(id)); err != nil {
		log.Printf("Failed to delete consultation cache: %v", err)
	}
	r.invalidateConsultationList(ctx)
}

func (r *DatabaseRepository) invalidateConsultationList(ctx context.Context) {
	if err := r.cache.Delete(ctx, consultationsCacheKey); err != nil {
		log.Printf("Failed to delete consultations cache: %v", err)
	}
}

// invalidateConsultationCaches drops every consultation cache entry,
// used after a patient cascade delete removes an unknown set of rows.
func (r *DatabaseRepository) invalidateConsultationCaches(ctx context.Context) {
	if err := r.cache.DeleteAll(ctx, "consultation_cache:*"); err != nil {
		log.Printf("Failed to delete consultation caches: %v", err)
	}
	r.invalidateConsultationList(ctx)
}
