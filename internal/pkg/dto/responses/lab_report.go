package responses

type LabReport struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	ContentType string `json:"content_type"`
	SizeInBytes int64  `json:"size_in_bytes"`
	Summary     string `json:"summary,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
}

type LabReportSummary struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
}
