package service

import (
	"context"
	"sync"

	"github.com/furnimart/furnimart-backend/internal/storage"
)

// recordingObjectStore captures Delete calls so tests can assert on
// background media cleanup.
type recordingObjectStore struct {
	mu      sync.Mutex
	deleted []string
}

func (r *recordingObjectStore) Upload(_ context.Context, _ []byte, folder, filename, _ string) (*storage.UploadResult, error) {
	key := folder + "/" + filename
	return &storage.UploadResult{URL: "https://cdn.example.com/" + key, Key: key}, nil
}

func (r *recordingObjectStore) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleted = append(r.deleted, key)
	return nil
}

func (r *recordingObjectStore) deletedKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.deleted...)
}
