package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/jilee1212/sitegen"
	"github.com/jilee1212/sitegen/mock"
	sitegenslog "github.com/jilee1212/sitegen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_ClassifyAndExtract(t *testing.T) {
	t.Parallel()

	t.Run("logs a successful extraction with duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BundleExtractor{
			ClassifyAndExtractFn: func(ctx context.Context, texts []string) (*sitegen.ContentBundle, error) {
				return &sitegen.ContentBundle{
					Company:    sitegen.Company{Name: "한빛"},
					Confidence: 0.9,
				}, nil
			},
		}
		e := sitegenslog.NewLoggingExtractor(inner, logger)

		bundle, err := e.ClassifyAndExtract(context.Background(), []string{"text"})

		require.NoError(t, err)
		assert.Equal(t, "한빛", bundle.Company.Name)
		assert.Contains(t, buf.String(), "external extraction")
		assert.Contains(t, buf.String(), "한빛")
		assert.Contains(t, buf.String(), "duration")
	})

	t.Run("logs failures as warnings and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BundleExtractor{
			ClassifyAndExtractFn: func(ctx context.Context, texts []string) (*sitegen.ContentBundle, error) {
				return nil, sitegen.Errorf(sitegen.EUNAVAILABLE, "model is down")
			},
		}
		e := sitegenslog.NewLoggingExtractor(inner, logger)

		_, err := e.ClassifyAndExtract(context.Background(), []string{"text"})

		assert.Equal(t, sitegen.EUNAVAILABLE, sitegen.ErrorCode(err))
		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "external extraction failed")
		assert.Contains(t, buf.String(), "model is down")
	})
}

func TestLoggingInjector_Inject(t *testing.T) {
	t.Parallel()

	t.Run("logs applied sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Injector{
			InjectFn: func(template string, bundle *sitegen.ContentBundle) (*sitegen.InjectResult, error) {
				return &sitegen.InjectResult{
					HTML:            "<html></html>",
					AppliedSections: []string{"hero", "services"},
					Applied:         true,
				}, nil
			},
		}
		in := sitegenslog.NewLoggingInjector(inner, logger)

		result, err := in.Inject("<html></html>", &sitegen.ContentBundle{})

		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Contains(t, buf.String(), "template injection")
		assert.Contains(t, buf.String(), "hero")
	})

	t.Run("logs failures as warnings", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Injector{
			InjectFn: func(template string, bundle *sitegen.ContentBundle) (*sitegen.InjectResult, error) {
				return &sitegen.InjectResult{HTML: template}, sitegen.Errorf(sitegen.EINVALID, "template is empty")
			},
		}
		in := sitegenslog.NewLoggingInjector(inner, logger)

		_, err := in.Inject("", &sitegen.ContentBundle{})

		assert.Equal(t, sitegen.EINVALID, sitegen.ErrorCode(err))
		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "template injection failed")
	})
}
