package creds

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leynos/podbot/internal/engine"
)

type fakeUploader struct {
	calls      int
	gotPath    string
	uploadErr  error
}

func (f *fakeUploader) UploadToContainer(ctx context.Context, containerID string, content io.Reader, targetPath string) error {
	f.calls++
	f.gotPath = targetPath
	return f.uploadErr
}

func TestUpload_EmptyPlanIsNoOp(t *testing.T) {
	f := &fakeUploader{}
	uploaded, err := Upload(context.Background(), f, "abc", Plan{})
	require.NoError(t, err)
	assert.Nil(t, uploaded)
	assert.Equal(t, 0, f.calls)
}

func TestUpload_Success(t *testing.T) {
	src := t.TempDir()
	f := &fakeUploader{}
	plan := Plan{Pairs: []SourceTarget{{Source: src, Target: "/root/.claude"}}}

	uploaded, err := Upload(context.Background(), f, "abc", plan)
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/.claude"}, uploaded)
	assert.Equal(t, 1, f.calls)
	assert.Equal(t, "/root", f.gotPath)
}

func TestUpload_EngineFailurePropagates(t *testing.T) {
	src := t.TempDir()
	f := &fakeUploader{uploadErr: &engine.UploadFailedError{Container: "abc", Message: "disk full"}}
	plan := Plan{Pairs: []SourceTarget{{Source: src, Target: "/root/.claude"}}}

	_, err := Upload(context.Background(), f, "abc", plan)
	require.Error(t, err)
	var want *engine.UploadFailedError
	assert.ErrorAs(t, err, &want)
}

func TestUpload_ArchiveFailurePropagates(t *testing.T) {
	f := &fakeUploader{}
	plan := Plan{Pairs: []SourceTarget{{Source: "/nonexistent-path-xyz", Target: "/root/.claude"}}}

	_, err := Upload(context.Background(), f, "abc", plan)
	require.Error(t, err)
	var want *engine.UploadFailedError
	assert.ErrorAs(t, err, &want)
	assert.True(t, errors.As(err, &want))
	assert.NotNil(t, want.Unwrap(), "the os.Stat cause must survive through Unwrap")
}
