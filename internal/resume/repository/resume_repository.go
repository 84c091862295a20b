package repository

import (
	"errors"
	"math"
	"time"

	resumedomain "ai-email-assistant/internal/resume/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resumeRepository implements ResumeRepository backed by gorm
type resumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new instance of resumeRepository
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{
		db: db,
	}
}

func (r *resumeRepository) Create(resume *resumedomain.Resume) error {
	resume.ID = uuid.New().String()
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = time.Now()
	}
	return r.db.Create(resume).Error
}

func (r *resumeRepository) FindByUser(userID string) ([]resumedomain.Resume, error) {
	var resumes []resumedomain.Resume
	err := r.db.Where("user_id = ?", userID).Order("uploaded_at DESC").Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

func (r *resumeRepository) FindByID(userID, id string) (*resumedomain.Resume, error) {
	var resume resumedomain.Resume
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&resume).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resume, nil
}

func (r *resumeRepository) Update(resume *resumedomain.Resume) error {
	return r.db.Save(resume).Error
}

func (r *resumeRepository) AverageMatchScore(userID string) (float64, error) {
	var avg *float64
	err := r.db.Model(&resumedomain.Resume{}).
		Where("user_id = ? AND matched_score IS NOT NULL", userID).
		Select("AVG(matched_score)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return math.Round(*avg*100) / 100, nil
}
