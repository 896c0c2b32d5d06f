package s3mock

import (
	"context"
	"fmt"

	"github.com/picparty/core/internal/model"
)

// PromptStore is the no-infra stand-in used when AWS credentials are
// absent and by tests.
type PromptStore struct{}

func New() *PromptStore {
	return &PromptStore{}
}

func (s *PromptStore) ResolveAsset(ctx context.Context, id model.PromptID) (string, error) {
	return fmt.Sprintf("mock://prompts/prompt_%d.jpg", int(id)), nil
}
