package feedback

import "time"

type CycleRequest struct {
	Name               string   `json:"name" binding:"required,max=150"`
	Description        string   `json:"description" binding:"max=2000"`
	PeriodStart        string   `json:"period_start" binding:"required"`
	PeriodEnd          string   `json:"period_end" binding:"required"`
	Competencies       []string `json:"competencies" binding:"required,min=1,max=30,dive,required,max=100"`
	RatingScale        int      `json:"rating_scale" binding:"omitempty,min=3,max=10"`
	AnonymityThreshold int      `json:"anonymity_threshold" binding:"omitempty,min=1,max=10"`
}

type CycleFilter struct {
	Status string `form:"status" binding:"omitempty,oneof=DRAFT ACTIVE CLOSED"`
}

type CycleResponse struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	PeriodStart        string     `json:"period_start"`
	PeriodEnd          string     `json:"period_end"`
	Competencies       []string   `json:"competencies"`
	RatingScale        int        `json:"rating_scale"`
	AnonymityThreshold int        `json:"anonymity_threshold"`
	Status             string     `json:"status"`
	ActivatedAt        *time.Time `json:"activated_at,omitempty"`
	ClosedAt           *time.Time `json:"closed_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type AssignmentRequest struct {
	ReviewerID   string `json:"reviewer_id" binding:"required,uuid"`
	RevieweeID   string `json:"reviewee_id" binding:"required,uuid"`
	Relationship string `json:"relationship" binding:"required"`
}

type AutoAssignRequest struct {
	RevieweeIDs []string `json:"reviewee_ids" binding:"required,min=1,max=500,dive,uuid"`
}

type AutoAssignResponse struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type AssignmentFilter struct {
	ReviewerID string `form:"reviewer_id" binding:"omitempty,uuid"`
	RevieweeID string `form:"reviewee_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=PENDING SUBMITTED"`
}

type AssignmentResponse struct {
	ID           string     `json:"id"`
	CycleID      string     `json:"cycle_id"`
	ReviewerID   string     `json:"reviewer_id"`
	ReviewerName string     `json:"reviewer_name,omitempty"`
	RevieweeID   string     `json:"reviewee_id"`
	RevieweeName string     `json:"reviewee_name,omitempty"`
	Relationship string     `json:"relationship"`
	Status       string     `json:"status"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
}

type SubmitRequest struct {
	Ratings map[string]int `json:"ratings" binding:"required,min=1"`
	Comment string         `json:"comment" binding:"max=4000"`
}

type RelationshipScore struct {
	Relationship string   `json:"relationship"`
	Count        int      `json:"count"`
	Average      *float64 `json:"average"`
	Suppressed   bool     `json:"suppressed"`
}

type CompetencyScore struct {
	Competency     string              `json:"competency"`
	Average        *float64            `json:"average"`
	ByRelationship []RelationshipScore `json:"by_relationship"`
}

type ReportComment struct {
	Relationship string `json:"relationship"`
	Comment      string `json:"comment"`
}

type ReportResponse struct {
	CycleID        string            `json:"cycle_id"`
	RevieweeID     string            `json:"reviewee_id"`
	RatingScale    int               `json:"rating_scale"`
	ResponseCount  int               `json:"response_count"`
	OverallAverage *float64          `json:"overall_average"`
	Competencies   []CompetencyScore `json:"competencies"`
	Comments       []ReportComment   `json:"comments"`
}

type ProgressRow struct {
	Relationship string `json:"relationship"`
	Assigned     int    `json:"assigned"`
	Submitted    int    `json:"submitted"`
}

type ProgressResponse struct {
	CycleID        string        `json:"cycle_id"`
	Assigned       int           `json:"assigned"`
	Submitted      int           `json:"submitted"`
	CompletionRate float64       `json:"completion_rate"`
	ByRelationship []ProgressRow `json:"by_relationship"`
}
