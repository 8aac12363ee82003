package controller

import (
	"errors"
	"io"
	"mime/multipart"

	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/gin-gonic/gin"
)

const (
	maxImageSize  = 5 << 20 // 5 MB per file
	maxImageFiles = 5
)

var allowedImageTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
}

var errStorageUnavailable = errors.New("object storage is not configured")

// uploadFormImage streams one multipart file into object storage and returns
// the stored URL and key.
func uploadFormImage(c *gin.Context, store storage.ObjectStorage, header *multipart.FileHeader, folder string) (*storage.UploadResult, error) {
	if store == nil {
		return nil, errStorageUnavailable
	}

	if err := storage.ValidateFileSize(header.Size, maxImageSize); err != nil {
		return nil, err
	}
	contentType := header.Header.Get("Content-Type")
	if err := storage.ValidateContentType(contentType, allowedImageTypes); err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return store.Upload(c.Request.Context(), data, folder, header.Filename, contentType)
}
