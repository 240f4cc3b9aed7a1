package port

import (
	"context"

	"github.com/Xalpha19/chaitravm/internal/core/domain"
)

// IntakeService gates, persists, and announces one contact submission.
type IntakeService interface {
	Process(ctx context.Context, payload domain.SubmissionPayload, meta domain.RequestMeta) domain.IntakeResult
}

type BlogService interface {
	LatestPosts(ctx context.Context, count int) ([]domain.BlogPost, error)
}
