package engine

import "context"

// Loader fetches assets by file name. It is only used while a game
// initializes, never during a tick.
type Loader interface {
	LoadImage(ctx context.Context, name string) (Image, error)
	LoadSheet(ctx context.Context, name string) (Sheet, error)
	ReadFile(ctx context.Context, name string) ([]byte, error)
}
