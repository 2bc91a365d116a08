package mock

import (
	"context"

	"github.com/jilee1212/sitegen"
)

var _ sitegen.BundleExtractor = (*BundleExtractor)(nil)

// BundleExtractor is a mock implementation of sitegen.BundleExtractor.
type BundleExtractor struct {
	ClassifyAndExtractFn func(ctx context.Context, texts []string) (*sitegen.ContentBundle, error)
}

func (e *BundleExtractor) ClassifyAndExtract(ctx context.Context, texts []string) (*sitegen.ContentBundle, error) {
	return e.ClassifyAndExtractFn(ctx, texts)
}
