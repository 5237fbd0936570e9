package submission

import (
	"context"
	"fmt"

	"github.com/istpublications/intake-backend/internal/domain"
)

// Get returns the submission with its sub-records and event trail.
func (s *Service) Get(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.subs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}
