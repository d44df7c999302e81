package ports

import "context"

// StoredAsset is the durable location of an uploaded file.
type StoredAsset struct {
	URL      string
	PublicID string
}

// MediaStore is the external asset host. Store consumes the local file:
// it is removed on every outcome. DeleteByID of an absent asset succeeds.
type MediaStore interface {
	Store(ctx context.Context, localFilePath string) (*StoredAsset, error)
	DeleteByID(ctx context.Context, publicID string) error
}
