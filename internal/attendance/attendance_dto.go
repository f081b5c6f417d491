package attendance

type ClockInRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type ClockOutRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Notes     *string  `json:"notes"`
}

type MarkAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	Status     string  `json:"status" binding:"required"`
	Late       bool    `json:"late"`
	Notes      *string `json:"notes"`
}

type BulkMarkRequest struct {
	Entries []MarkAttendanceRequest `json:"entries" binding:"required,min=1,max=5000,dive"`
}

type BulkMarkResponse struct {
	Saved int `json:"saved"`
}

type ListFilter struct {
	EmployeeID string
	Month      string
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	EmployeeCode   string   `json:"employee_code,omitempty"`
	EmployeeName   string   `json:"employee_name,omitempty"`
	AttendanceDate string   `json:"attendance_date"`
	Status         string   `json:"status"`
	Late           bool     `json:"late"`
	ClockIn        *string  `json:"clock_in,omitempty"`
	ClockOut       *string  `json:"clock_out,omitempty"`
	WorkedMinutes  int      `json:"worked_minutes"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	Source         string   `json:"source"`
	Notes          *string  `json:"notes,omitempty"`
}

// MonthlySummary counts one employee's days in a month.
type MonthlySummary struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeCode string  `json:"employee_code,omitempty"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Month        string  `json:"month"`
	Present      int     `json:"present"`
	HalfDay      int     `json:"half_day"`
	Absent       int     `json:"absent"`
	Leave        int     `json:"leave"`
	Holiday      int     `json:"holiday"`
	WeekOff      int     `json:"week_off"`
	Late         int     `json:"late"`
	PayableDays  float64 `json:"payable_days"`
}
