package main

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/url"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func (app *application) deletePhotoFromCloudinary(photoURL string) error {
	publicID, err := extractCloudinaryPublicID(photoURL)
	if err != nil {
		return fmt.Errorf("failed to extract public ID: %w", err)
	}

	_, err = app.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete photo from Cloudinary: %w", err)
	}

	return nil
}

// extractCloudinaryPublicID pulls the asset's public ID out of a delivery
// URL: everything after the "upload" path segment.
func extractCloudinaryPublicID(photoURL string) (string, error) {
	parsedURL, err := url.Parse(photoURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	pathParts := strings.Split(parsedURL.Path, "/")
	for i, part := range pathParts {
		if part == "upload" && i+1 < len(pathParts) {
			return strings.Join(pathParts[i+1:], "/"), nil
		}
	}

	return "", errors.New("failed to extract public ID from URL")
}

// uploadImagesWithVenueID uploads each file to the venues folder under a
// venue-scoped public ID and returns the secure delivery URLs.
func (app *application) uploadImagesWithVenueID(
	files []*multipart.FileHeader,
	venueID int64,
) ([]string, error) {
	var urls []string

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		// Since we are in a loop, we call Close() after each upload.
		defer file.Close()

		resp, err := app.cld.Upload.Upload(
			context.Background(), // external call, not tied to the request
			file,
			uploader.UploadParams{
				Folder:    "venues",
				PublicID:  fmt.Sprintf("venue_%d_image_%d", venueID, time.Now().UnixNano()),
				Overwrite: api.Bool(false),
			},
		)
		if err != nil {
			return nil, fmt.Errorf("cloudinary upload: %w", err)
		}

		urls = append(urls, resp.SecureURL)
	}

	return urls, nil
}
