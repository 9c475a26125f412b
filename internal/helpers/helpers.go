package helpers

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	ToursFolder        = "tours"
	CoachesFolder      = "coaches"
	TestimonialsFolder = "testimonials"
	GalleryFolder      = "gallery"
)

const uploadTag = "padel-tour-academia"

// StringTrim trims surrounding whitespace and quotes, which show up when clients
// template ids into paths.
func StringTrim(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'")
}

// CloudinaryMedia mirrors remote images into a Cloudinary account.
type CloudinaryMedia struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryMedia(cld *cloudinary.Cloudinary) *CloudinaryMedia {
	return &CloudinaryMedia{cld: cld}
}

func (m *CloudinaryMedia) Mirror(ctx context.Context, imageURL, folder string) (string, error) {
	if IsHostedImage(imageURL) {
		return imageURL, nil
	}
	urls, err := UploadImages(ctx, m.cld, []string{imageURL}, folder)
	if err != nil {
		return "", err
	}
	if len(urls) == 0 || urls[0] == "" {
		return "", fmt.Errorf("cloudinary returned no url for %s", imageURL)
	}
	return urls[0], nil
}

// IsHostedImage reports whether the url already points at Cloudinary delivery.
func IsHostedImage(imageURL string) bool {
	return strings.Contains(imageURL, "res.cloudinary.com")
}

func UploadImages(ctx context.Context, cld *cloudinary.Cloudinary, imageNames []string, imagePath string) ([]string, error) {
	var urls []string

	for _, filePath := range imageNames {
		if strings.TrimSpace(filePath) == "" {
			continue
		}
		uploadResult, err := cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
			Folder: imagePath,
			Tags:   []string{uploadTag},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to upload image %s: %w", filePath, err)
		}
		if uploadResult.Error.Message != "" {
			return nil, fmt.Errorf("failed to upload image %s: %s", filePath, uploadResult.Error.Message)
		}
		urls = append(urls, uploadResult.SecureURL)
	}

	return urls, nil
}
