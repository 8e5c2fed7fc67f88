package dto

// ChatRequest is one user message to the hybrid advisor.
type ChatRequest struct {
	Message   string `json:"message" validate:"required,min=1,max=4000"`
	SessionID string `json:"session_id" validate:"required,min=1,max=128"`
}

// ChatResponse carries the Markdown reply.
type ChatResponse struct {
	Text string `json:"text"`
}

// IngestRequest optionally overrides the configured knowledge directory.
type IngestRequest struct {
	Directory string `json:"directory,omitempty"`
}

// IngestSummary reports what an ingest run queued.
type IngestSummary struct {
	Directory   string   `json:"directory"`
	QueuedFiles []string `json:"queued_files"`
	StoredCount int64    `json:"stored_count"`
	Summary     string   `json:"summary"`
}

// PublishIngestFileMessage is the watermill payload for one knowledge file.
type PublishIngestFileMessage struct {
	Path string `json:"path"`
}

// DocumentAnalysisResponse is the result of analyzing an uploaded PDF.
type DocumentAnalysisResponse struct {
	Filename   string            `json:"filename"`
	Pages      int               `json:"pages"`
	DocKind    string            `json:"doc_kind"`
	Fields     map[string]string `json:"fields"`
	Report     interface{}       `json:"report,omitempty"`
	Markdown   string            `json:"markdown"`
	TextSample string            `json:"text_sample"`
}
