package service

import "context"

// ImageUploader stores images on the blob host and returns their public URL.
type ImageUploader interface {
	UploadImage(ctx context.Context, folder, name string, data []byte) (string, error)
}
