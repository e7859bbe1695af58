package filestorage

import (
	"context"
	"mime/multipart"
)

// Folders used for placement documents
const (
	FolderOfferLetters = "offer-letters"
	FolderIDCards      = "id-cards"
)

// StoredFile describes a saved document
type StoredFile struct {
	URL      string // Public retrieval URL
	Key      string // Storage key relative to the storage root, used for deletion
	Filename string // Original filename
	Size     int64
}

// DocumentStorage stores uploaded placement documents and returns a stable retrieval URL
type DocumentStorage interface {
	// Save stores the uploaded file under the given folder
	Save(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (*StoredFile, error)

	// Delete removes a previously stored file by key. Missing files are not an error.
	Delete(ctx context.Context, key string) error

	// KeyFromURL maps a URL returned by Save back to its key
	KeyFromURL(url string) (string, bool)
}
