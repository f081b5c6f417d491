package feedback

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	CycleDraft  = "DRAFT"
	CycleActive = "ACTIVE"
	CycleClosed = "CLOSED"
)

const (
	RelationSelf         = "SELF"
	RelationManager      = "MANAGER"
	RelationPeer         = "PEER"
	RelationDirectReport = "DIRECT_REPORT"
)

// Relationships in report order.
var Relationships = []string{RelationSelf, RelationManager, RelationPeer, RelationDirectReport}

func IsRelationship(r string) bool {
	switch r {
	case RelationSelf, RelationManager, RelationPeer, RelationDirectReport:
		return true
	}
	return false
}

const (
	AssignmentPending   = "PENDING"
	AssignmentSubmitted = "SUBMITTED"
)

const (
	DefaultRatingScale        = 5
	DefaultAnonymityThreshold = 3
)

type Cycle struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID `gorm:"type:uuid;not null;index:idx_feedback_cycles_company_status"`
	Name               string    `gorm:"type:varchar(150);not null"`
	Description        string    `gorm:"type:text"`
	PeriodStart        time.Time `gorm:"type:date;not null"`
	PeriodEnd          time.Time `gorm:"type:date;not null"`
	Competencies       []byte    `gorm:"type:jsonb;not null"`
	RatingScale        int       `gorm:"not null;default:5"`
	AnonymityThreshold int       `gorm:"not null;default:3"`
	Status             string    `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_feedback_cycles_company_status"`
	CreatedBy          uuid.UUID `gorm:"type:uuid;not null"`
	ActivatedAt        *time.Time
	ClosedAt           *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Cycle) TableName() string {
	return "feedback_cycles"
}

// CompetencyList decodes the ordered competency names.
func (c Cycle) CompetencyList() []string {
	var list []string
	if len(c.Competencies) == 0 {
		return list
	}
	_ = json.Unmarshal(c.Competencies, &list)
	return list
}

func (c *Cycle) SetCompetencies(list []string) error {
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	c.Competencies = b
	return nil
}

type Assignment struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	CycleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_assignment,priority:1"`
	ReviewerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_assignment,priority:2;index"`
	RevieweeID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_assignment,priority:3;index"`
	Relationship string    `gorm:"type:varchar(20);not null"`
	Status       string    `gorm:"type:varchar(20);not null;default:'PENDING'"`
	SubmittedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Reviewer *EmployeeRef `gorm:"foreignKey:ReviewerID;references:ID"`
	Reviewee *EmployeeRef `gorm:"foreignKey:RevieweeID;references:ID"`
}

func (Assignment) TableName() string {
	return "feedback_assignments"
}

// Response holds the answers of one assignment. It carries no reviewer id so
// reports can be built from this table alone.
type Response struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_response_assignment"`
	CycleID      uuid.UUID `gorm:"type:uuid;not null;index:idx_feedback_responses_cycle_reviewee,priority:1"`
	RevieweeID   uuid.UUID `gorm:"type:uuid;not null;index:idx_feedback_responses_cycle_reviewee,priority:2"`
	Relationship string    `gorm:"type:varchar(20);not null"`
	Ratings      []byte    `gorm:"type:jsonb;not null"`
	Comment      string    `gorm:"type:text"`
	CreatedAt    time.Time
}

func (Response) TableName() string {
	return "feedback_responses"
}

func (r Response) RatingMap() map[string]int {
	m := map[string]int{}
	if len(r.Ratings) == 0 {
		return m
	}
	_ = json.Unmarshal(r.Ratings, &m)
	return m
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

func marshalRatings(m map[string]int) ([]byte, error) {
	return json.Marshal(m)
}
