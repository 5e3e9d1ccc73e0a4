package mocks

import (
	"context"
	"io"
	"sync"
)

// Uploader is a storage-gateway double returning a fixed locator.
type Uploader struct {
	locker sync.Mutex

	Ref string
	Err error

	Calls int
	Names []string
}

func NewUploader(ref string) *Uploader {
	return &Uploader{Ref: ref}
}

func (u *Uploader) Upload(ctx context.Context, name string, reader io.Reader) (string, error) {
	u.locker.Lock()
	defer u.locker.Unlock()

	u.Calls++
	u.Names = append(u.Names, name)

	if u.Err != nil {
		return "", u.Err
	}

	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}

	return u.Ref, nil
}
