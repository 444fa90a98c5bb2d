package llm

import "context"

type ctxKey int

const (
	purposeKey ctxKey = iota
	topicKey
)

// PurposeUnknown labels requests made without WithPurpose.
const PurposeUnknown = "unknown"

// WithPurpose labels the request for event logging, e.g. "quiz-draft".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or PurposeUnknown.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}

// WithTopic records the quiz topic a request drafts for.
func WithTopic(ctx context.Context, topic string) context.Context {
	return context.WithValue(ctx, topicKey, topic)
}

// TopicFrom returns the quiz topic, or "" when none was set.
func TopicFrom(ctx context.Context) string {
	v, _ := ctx.Value(topicKey).(string)
	return v
}
