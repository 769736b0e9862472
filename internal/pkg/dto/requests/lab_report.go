package requests

// SummarizeLabReport carries the extracted report text. Text extraction
// happens client-side; the server only forwards it to the summarizer model.
type SummarizeLabReport struct {
	Text string `json:"text" validate:"required,min=1,max=20000"`
}
