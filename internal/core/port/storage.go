package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

type SubmissionStorage interface {
	StoreSubmission(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error)
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.ContactSubmission, error)
}
