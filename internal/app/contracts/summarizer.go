package contracts

import "context"

// Summarizer wraps the external generative model used for lab report
// OCR/summarization. Implementations must bound every call with a timeout and
// surface deadline hits as retryable errors, never hang.
type Summarizer interface {
	Summarize(ctx context.Context, documentText string) (summary string, err error)
}
