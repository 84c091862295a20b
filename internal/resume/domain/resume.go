package domain

import "time"

// Resume is an uploaded resume with its parsed text content.
type Resume struct {
	ID             string    `json:"id"`
	Filename       string    `json:"filename"`
	Content        string    `json:"content" gorm:"type:text"`
	JobDescription string    `json:"job_description,omitempty" gorm:"type:text"`
	MatchedScore   *int      `json:"matched_score,omitempty"`
	UserID         string    `json:"user_id" gorm:"index"`
	UploadedAt     time.Time `json:"uploaded_at"`
}
