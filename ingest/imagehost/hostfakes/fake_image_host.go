package hostfakes

import (
	"context"
	"fmt"
	"sync"

	"github.com/mochilabs/go-catalog-server/ingest"
)

var _ ingest.ImageHost = (*FakeImageHost)(nil)

// Upload records a single stored image.
type Upload struct {
	Folder string
	Data   []byte
}

// FakeImageHost is an in-memory ImageHost for tests. Width and Height are
// reported for every upload; Err, when set, fails every upload; Block makes
// uploads hang until the context is done.
type FakeImageHost struct {
	Width  int
	Height int
	Err    error
	Block  bool

	mu      sync.Mutex
	uploads []Upload
}

func NewFakeImageHost(width, height int) *FakeImageHost {
	return &FakeImageHost{Width: width, Height: height}
}

func (f *FakeImageHost) Upload(ctx context.Context, folder string, data []byte) (*ingest.HostedImage, error) {
	if f.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.Err != nil {
		return nil, f.Err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	f.uploads = append(f.uploads, Upload{Folder: folder, Data: data})
	return &ingest.HostedImage{
		URL:    fmt.Sprintf("https://img.test/%s/%d", folder, len(f.uploads)),
		Width:  f.Width,
		Height: f.Height,
	}, nil
}

// Uploads returns a copy of everything stored so far.
func (f *FakeImageHost) Uploads() []Upload {
	f.mu.Lock()
	defer f.mu.Unlock()

	uploads := make([]Upload, len(f.uploads))
	copy(uploads, f.uploads)
	return uploads
}
