package identity

import "context"

type subjectCtxKey struct{}

// SetSubjectToContext stores the authenticated subject ID in the context.
func SetSubjectToContext(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, subjectCtxKey{}, subjectID)
}

// GetSubjectFromContext retrieves the authenticated subject ID from the context.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subjectID, ok := ctx.Value(subjectCtxKey{}).(string)
	return subjectID, ok
}
