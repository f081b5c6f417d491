package bulkimport

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	KindEmployees  = "employees"
	KindAttendance = "attendance"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const (
	JobValidated = "VALIDATED"
	JobFailed    = "FAILED"
	JobCommitted = "COMMITTED"
)

func IsKind(k string) bool {
	return k == KindEmployees || k == KindAttendance
}

func IsFormat(f string) bool {
	return f == FormatCSV || f == FormatXLSX
}

// Job records one upload, whether it was a dry run, rejected or committed.
type Job struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_import_jobs_company_created,priority:1"`
	Kind        string    `gorm:"type:varchar(20);not null"`
	Format      string    `gorm:"type:varchar(10);not null"`
	FileName    string    `gorm:"type:varchar(255)"`
	Month       string    `gorm:"type:varchar(7)"`
	DryRun      bool      `gorm:"not null;default:false"`
	Status      string    `gorm:"type:varchar(20);not null"`
	TotalRows   int       `gorm:"not null;default:0"`
	ValidRows   int       `gorm:"not null;default:0"`
	Imported    int       `gorm:"not null;default:0"`
	ErrorCount  int       `gorm:"not null;default:0"`
	Errors      []byte    `gorm:"type:jsonb"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time `gorm:"index:idx_import_jobs_company_created,priority:2,sort:desc"`
	CommittedAt *time.Time
}

func (Job) TableName() string {
	return "import_jobs"
}

func (j Job) RowErrors() []RowError {
	if len(j.Errors) == 0 {
		return []RowError{}
	}
	var errs []RowError
	if err := json.Unmarshal(j.Errors, &errs); err != nil {
		return []RowError{}
	}
	return errs
}

func (j *Job) SetRowErrors(errs []RowError) error {
	if errs == nil {
		errs = []RowError{}
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return err
	}
	j.Errors = b
	j.ErrorCount = len(errs)
	return nil
}
