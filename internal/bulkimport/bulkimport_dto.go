package bulkimport

import "time"

// RowError points at one bad cell. Row is the 1-based line in the file,
// header included, so it matches what a spreadsheet shows.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ImportRequest struct {
	Kind     string
	Format   string
	FileName string
	Month    string
	DryRun   bool
}

type ImportReport struct {
	JobID     string     `json:"job_id"`
	Kind      string     `json:"kind"`
	Month     string     `json:"month,omitempty"`
	DryRun    bool       `json:"dry_run"`
	Status    string     `json:"status"`
	TotalRows int        `json:"total_rows"`
	ValidRows int        `json:"valid_rows"`
	Imported  int        `json:"imported"`
	Errors    []RowError `json:"errors"`
}

type JobFilter struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=employees attendance"`
	Status string `form:"status" binding:"omitempty,oneof=VALIDATED FAILED COMMITTED"`
}

type JobResponse struct {
	ID          string     `json:"id"`
	Kind        string     `json:"kind"`
	Format      string     `json:"format"`
	FileName    string     `json:"file_name,omitempty"`
	Month       string     `json:"month,omitempty"`
	DryRun      bool       `json:"dry_run"`
	Status      string     `json:"status"`
	TotalRows   int        `json:"total_rows"`
	ValidRows   int        `json:"valid_rows"`
	Imported    int        `json:"imported"`
	ErrorCount  int        `json:"error_count"`
	Errors      []RowError `json:"errors,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CommittedAt *time.Time `json:"committed_at,omitempty"`
}

type TemplateRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"`
	Month  string `form:"month"`
}

type ExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"`
}

// File is a generated document ready to be streamed.
type File struct {
	Name        string
	ContentType string
	Content     []byte
}
