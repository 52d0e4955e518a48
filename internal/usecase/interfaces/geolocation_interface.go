package interfaces

import "context"

// IGeoResolver is the best-effort IP to location lookup used for tracking
// enrichment. It never fails: any problem yields "Unknown".
type IGeoResolver interface {
	ResolveLocation(ctx context.Context, ip string) string
}

// ISecretProvider supplies the server-side secret for quick-send token
// derivation. The secret must be stable across requests; rotating it
// invalidates every outstanding unused link.
type ISecretProvider interface {
	QuickSendSecret() string
}
