package repositories

import (
	"MediTrack/cache"
	"MediTrack/database"
	"MediTrack/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	patientCacheExpiry = 24 * time.Hour
	patientsCacheKey   = "patients_cache"

	lockMaxRetries = 3
)

var (
	lockRetryDelay = 2 * time.Second
	newLock        = database.NewLock
)

// DatabaseRepository is the durable Storage backend: PostgreSQL via
// gorm with a Redis read-through cache on single-record and full-list
// reads. Patient methods live here, consultation methods in
// consultationRepository.go.
type DatabaseRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

func NewDatabaseRepository(db *gorm.DB, cache *cache.Cache) *DatabaseRepository {
	return &DatabaseRepository{db: db, cache: cache}
}

func patientCacheKey(id uint) string {
	return fmt.Sprintf("patient_cache:%d", id)
}

func (r *DatabaseRepository) GetPatient(ctx context.Context, id uint) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := patientCacheKey(id)
	if cached, err := r.cache.Get(ctx, cacheKey); err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	} else if cached != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	}

	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	r.cachePut(ctx, cacheKey, patient, patientCacheExpiry)
	return &patient, nil
}

func (r *DatabaseRepository) GetPatients(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cached, err := r.cache.Get(ctx, patientsCacheKey); err != nil {
		log.Printf("Failed to get patients from cache: %v", err)
	} else if cached != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return nonNilPatients(patients), nil
		}
	}

	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patients = nonNilPatients(patients)
	r.cachePut(ctx, patientsCacheKey, patients, patientCacheExpiry)
	return patients, nil
}

func (r *DatabaseRepository) CreatePatient(ctx context.Context, input *models.PatientInput) (*models.Patient, error) {
	patient := input.ToPatient()
	if err := r.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	// A fresh record has no per-id cache entry yet; only the list is stale.
	r.invalidatePatientList(ctx)
	return &patient, nil
}

func (r *DatabaseRepository) UpdatePatient(ctx context.Context, id uint, update *models.PatientUpdate) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.WithContext(ctx).First(&patient, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	update.Apply(&patient)
	if err := r.db.WithContext(ctx).Omit("created_at").Save(&patient).Error; err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	r.invalidatePatientCache(ctx, id)
	return &patient, nil
}

// DeletePatient removes the patient and every consultation referencing
// it. Both deletes run inside one transaction so a crash between them
// cannot leave orphaned consultations; a Redis lock keeps two
// instances from interleaving the same cascade.
func (r *DatabaseRepository) DeletePatient(ctx context.Context, id uint) (bool, error) {
	lockKey := fmt.Sprintf("patient_lock:%d", id)
	lockValue := uuid.New().String()
	locked, err := acquireLock(ctx, lockKey, lockValue, 30*time.Second)
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	if !locked {
		return false, errors.New("failed to acquire lock after retries")
	}
	defer func() {
		if err := database.ReleaseLock(ctx, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	existed := false
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("patient_id = ?", id).Delete(&models.Consultation{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Patient{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		existed = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete patient: %w", err)
	}
	if existed {
		r.invalidatePatientCache(ctx, id)
		r.invalidateConsultationCaches(ctx)
	}
	return existed, nil
}

// SearchPatients matches names and email case-insensitively; the phone
// number is matched as a literal substring of the stored string.
func (r *DatabaseRepository) SearchPatients(ctx context.Context, query string) ([]models.Patient, error) {
	like := "%" + query + "%"
	var patients []models.Patient
	err := r.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR phone_number LIKE ?", like, like, like, like).
		Order("created_at DESC, id DESC").
		Find(&patients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search patients: %w", err)
	}
	return nonNilPatients(patients), nil
}

// gorm leaves the destination slice nil when no rows match; listing
// responses must encode as an empty JSON array, never null.
func nonNilPatients(patients []models.Patient) []models.Patient {
	if patients == nil {
		return []models.Patient{}
	}
	return patients
}

// acquireLock retries a few times before giving up, so transient
// contention on the same patient does not surface as an error.
func acquireLock(ctx context.Context, key, value string, expiry time.Duration) (bool, error) {
	var locked bool
	var err error
	for i := 0; i < lockMaxRetries; i++ {
		locked, err = newLock(ctx, key, value, expiry)
		if err == nil && locked {
			return true, nil
		}
		if i < lockMaxRetries-1 {
			time.Sleep(lockRetryDelay)
		}
	}
	return false, err
}

// cachePut serializes and stores a value; cache failures are logged,
// never surfaced, since the database already answered.
func (r *DatabaseRepository) cachePut(ctx context.Context, key string, value interface{}, expiry time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		log.Printf("Failed to marshal %s: %v", key, err)
		return
	}
	if err := r.cache.Set(ctx, key, payload, expiry); err != nil {
		log.Printf("Failed to set %s in cache: %v", key, err)
	}
}

func (r *DatabaseRepository) invalidatePatientCache(ctx context.Context, id uint) {
	if err := r.cache.Delete(ctx, patientCacheKey(id)); err != nil {
		log.Printf("Failed to delete patient cache: %v", err)
	}
	r.invalidatePatientList(ctx)
}

func (r *DatabaseRepository) invalidatePatientList(ctx context.Context) {
	if err := r.cache.Delete(ctx, patientsCacheKey); err != nil {
		log.Printf("Failed to delete patients cache: %v", err)
	}
}
