package ports

import "context"

// DocumentSink is the platform surface a generated document is handed to for
// display or printing. The core only builds content; how it reaches paper or
// screen is the sink's concern. Render returns an opaque handle identifying
// the displayed document.
type DocumentSink interface {
	Render(ctx context.Context, title, content string) (handle string, err error)
}

// ShareSurface is a native share capability (e.g. the Web Share API relayed
// by a client). Share returns an error when the surface is unavailable or
// the share was rejected.
type ShareSurface interface {
	Share(ctx context.Context, title, url string) error
}

// Clipboard is the fallback share surface: copy a URL for manual pasting.
type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

// ShareStore persists share tokens so a minted link keeps working for its
// configured lifetime.
type ShareStore interface {
	Put(ctx context.Context, token, trackingNumber string) error
	Get(ctx context.Context, token string) (trackingNumber string, err error)
}
