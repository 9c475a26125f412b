package services

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// MediaStore copies a remote image into managed storage and returns the URL the
// site should serve instead.
type MediaStore interface {
	Mirror(ctx context.Context, imageURL, folder string) (string, error)
}

// mirrorImage falls back to the original URL whenever mirroring is disabled or
// fails, so content writes never depend on the media provider.
func mirrorImage(ctx context.Context, media MediaStore, logger *zap.Logger, imageURL, folder string) string {
	if media == nil || strings.TrimSpace(imageURL) == "" {
		return imageURL
	}
	mirrored, err := media.Mirror(ctx, imageURL, folder)
	if err != nil {
		logger.Warn("image mirroring failed, keeping original url",
			zap.String("url", imageURL),
			zap.String("folder", folder),
			zap.Error(err),
		)
		return imageURL
	}
	return mirrored
}
