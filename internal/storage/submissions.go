package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

type SubmissionsStorage struct {
	db *PostgresDB
}

func NewSubmissionsStorage(db *PostgresDB) *SubmissionsStorage {
	return &SubmissionsStorage{
		db: db,
	}
}

// StoreSubmission inserts one contact submission and returns the record with
// its assigned ID and creation time. Records are never updated afterwards.
func (s *SubmissionsStorage) StoreSubmission(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	stored := *submission
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now().UTC()

	_, err := s.db.Exec(ctx,
		`INSERT INTO contact_submissions
		   (id, first_name, last_name, email, company, subject, message, verification_token, ip_address, user_agent, created_at)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`,
		stored.ID,
		stored.FirstName,
		stored.LastName,
		stored.Email,
		stored.Company,
		stored.Subject,
		stored.Message,
		stored.VerificationToken,
		stored.SourceIP,
		stored.UserAgent,
		stored.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &stored, nil
}

func (s *SubmissionsStorage) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error) {
	var sub domain.ContactSubmission
	var company sql.NullString

	err := s.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, email, company, subject, message, verification_token, ip_address, user_agent, created_at
		 FROM contact_submissions WHERE id = $1`,
		id,
	).Scan(
		&sub.ID,
		&sub.FirstName,
		&sub.LastName,
		&sub.Email,
		&company,
		&sub.Subject,
		&sub.Message,
		&sub.VerificationToken,
		&sub.SourceIP,
		&sub.UserAgent,
		&sub.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	sub.Company = company.String
	return &sub, nil
}
