package creds

import (
	"context"
	"fmt"
	"io"

	"github.com/leynos/podbot/internal/engine"
)

// Uploader is the engine capability needed to deliver an assembled
// archive; engine.Connector satisfies it.
type Uploader interface {
	UploadToContainer(ctx context.Context, containerID string, content io.Reader, targetPath string) error
}

// Upload builds the credential archive from plan and uploads it to the
// container's /root directory in a single call. An empty plan is a no-op
// success. Returns the set of in-container paths actually included.
func Upload(ctx context.Context, conn Uploader, containerID string, plan Plan) ([]string, error) {
	if plan.Empty() {
		return nil, nil
	}

	archive, err := BuildArchive(plan)
	if err != nil {
		return nil, &engine.UploadFailedError{Container: containerID, Message: fmt.Sprintf("building archive: %s", err), Err: err}
	}

	if err := conn.UploadToContainer(ctx, containerID, archive, "/root"); err != nil {
		return nil, err
	}

	targets := make([]string, len(plan.Pairs))
	for i, pair := range plan.Pairs {
		targets[i] = pair.Target
	}
	return targets, nil
}
