package settings

const (
	PolicyCalendar = "CALENDAR"
	PolicyFixed26  = "FIXED_26"
)

type PFConfig struct {
	Enabled      bool    `json:"enabled" yaml:"enabled"`
	EmployeeRate float64 `json:"employee_rate" yaml:"employee_rate"`
	EmployerRate float64 `json:"employer_rate" yaml:"employer_rate"`
	WageCeiling  int64   `json:"wage_ceiling" yaml:"wage_ceiling"`
}

type ESIConfig struct {
	Enabled        bool    `json:"enabled" yaml:"enabled"`
	EmployeeRate   float64 `json:"employee_rate" yaml:"employee_rate"`
	EmployerRate   float64 `json:"employer_rate" yaml:"employer_rate"`
	GrossThreshold int64   `json:"gross_threshold" yaml:"gross_threshold"`
}

// PTSlab applies Amount when MinGross <= gross <= MaxGross. MaxGross 0 means no upper bound.
type PTSlab struct {
	MinGross int64 `json:"min_gross" yaml:"min_gross"`
	MaxGross int64 `json:"max_gross" yaml:"max_gross"`
	Amount   int64 `json:"amount" yaml:"amount"`
}

type PTConfig struct {
	Enabled bool     `json:"enabled" yaml:"enabled"`
	Slabs   []PTSlab `json:"slabs" yaml:"slabs"`
}

type StatutoryConfig struct {
	PF  PFConfig  `json:"pf" yaml:"pf"`
	ESI ESIConfig `json:"esi" yaml:"esi"`
	PT  PTConfig  `json:"pt" yaml:"pt"`
}

// CompanySettings is the settings document of one company, stored as jsonb.
type CompanySettings struct {
	Statutory             StatutoryConfig    `json:"statutory" yaml:"statutory"`
	WorkingDayPolicy      string             `json:"working_day_policy" yaml:"working_day_policy"`
	LateCutoff            string             `json:"late_cutoff" yaml:"late_cutoff"`
	HalfDayThresholdHours float64            `json:"half_day_threshold_hours" yaml:"half_day_threshold_hours"`
	Timezone              string             `json:"timezone" yaml:"timezone"`
	LeaveEntitlements     map[string]float64 `json:"leave_entitlements" yaml:"leave_entitlements"`
	ExpenseCategoryLimits map[string]int64   `json:"expense_category_limits" yaml:"expense_category_limits"`
}

// PTFor returns the professional tax for a monthly gross.
func (c PTConfig) PTFor(gross int64) int64 {
	if !c.Enabled {
		return 0
	}
	for _, s := range c.Slabs {
		if gross >= s.MinGross && (s.MaxGross == 0 || gross <= s.MaxGross) {
			return s.Amount
		}
	}
	return 0
}
