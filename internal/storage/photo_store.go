package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/spec-kit/skillswap-service/internal/config"
)

// PhotoStore persists profile photos and returns a public URL.
type PhotoStore interface {
	UploadProfilePhoto(ctx context.Context, userID string, data []byte) (string, error)
}

type cloudinaryStore struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore builds a Cloudinary-backed store from config.
func NewCloudinaryStore(cfg config.CloudinaryConfig) (PhotoStore, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not configured")
	}
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &cloudinaryStore{client: client, folder: cfg.UploadFolder}, nil
}

// UploadProfilePhoto stores the photo under a per-user public id so repeated
// uploads replace the previous photo.
func (s *cloudinaryStore) UploadProfilePhoto(ctx context.Context, userID string, data []byte) (string, error) {
	result, err := s.client.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:  fmt.Sprintf("user_%s_profile", userID),
		Folder:    s.folder,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("upload profile photo: %w", err)
	}
	return result.SecureURL, nil
}
