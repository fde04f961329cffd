package backend

import "context"

type credentialsKey struct{}

// WithCredentials stores the caller's raw Cookie header so outbound backend
// requests carry the browser session. Credentials stay request-scoped; the
// client itself never remembers them.
func WithCredentials(ctx context.Context, cookieHeader string) context.Context {
	return context.WithValue(ctx, credentialsKey{}, cookieHeader)
}

// CredentialsFromContext returns the stored Cookie header, or "" when the
// request carried none.
func CredentialsFromContext(ctx context.Context) string {
	if cookies, ok := ctx.Value(credentialsKey{}).(string); ok {
		return cookies
	}

	return ""
}
