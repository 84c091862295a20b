package repository

import emaildomain "ai-email-assistant/internal/email/domain"

// EmailRepository persists generated email records.
type EmailRepository interface {
	Create(record *emaildomain.EmailRecord) error
	FindByUser(userID string) ([]emaildomain.EmailRecord, error)
	FindByID(userID, id string) (*emaildomain.EmailRecord, error)
	Update(record *emaildomain.EmailRecord) error
	CountByUser(userID string) (int64, error)
	ModelsUsedByUser(userID string) ([]string, error)
}
