package repository

import (
	"errors"
	"time"

	emaildomain "ai-email-assistant/internal/email/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// emailRepository implements EmailRepository backed by gorm
type emailRepository struct {
	db *gorm.DB
}

// NewEmailRepository creates a new instance of emailRepository
func NewEmailRepository(db *gorm.DB) EmailRepository {
	return &emailRepository{
		db: db,
	}
}

func (r *emailRepository) Create(record *emaildomain.EmailRecord) error {
	record.ID = uuid.New().String()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}
	return r.db.Create(record).Error
}

func (r *emailRepository) FindByUser(userID string) ([]emaildomain.EmailRecord, error) {
	var records []emaildomain.EmailRecord
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *emailRepository) FindByID(userID, id string) (*emaildomain.EmailRecord, error) {
	var record emaildomain.EmailRecord
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *emailRepository) Update(record *emaildomain.EmailRecord) error {
	return r.db.Save(record).Error
}

func (r *emailRepository) CountByUser(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&emaildomain.EmailRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *emailRepository) ModelsUsedByUser(userID string) ([]string, error) {
	var models []string
	err := r.db.Model(&emaildomain.EmailRecord{}).
		Where("user_id = ?", userID).
		Distinct("model_used").
		Pluck("model_used", &models).Error
	if err != nil {
		return nil, err
	}
	return models, nil
}
