package store

import "context"

// Collection keys. Each key holds one JSON array shared by every brand;
// records carry their own brand field.
const (
	KeyImages   = "marketing_images"
	KeyMessages = "marketing_messages"
	KeyBundles  = "marketing_bundles"
	KeyPosts    = "marketing_posts"
	KeyNotes    = "marketing_team_notes"
)

// Store persists whole collections. Writers read the latest collection,
// modify it in memory and write the complete result back; Write replaces the
// stored value atomically from the caller's perspective. There is exactly one
// logical writer, so no optimistic locking is layered on top.
type Store interface {
	// Read decodes the collection stored under key into v. A key that was
	// never written decodes as an empty collection, not an error.
	Read(ctx context.Context, key string, v any) error

	// Write replaces the collection stored under key with v.
	Write(ctx context.Context, key string, v any) error
}
