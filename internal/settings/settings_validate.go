package settings

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Validate returns one message per problem found in doc.
func Validate(doc CompanySettings) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	pf := doc.Statutory.PF
	if pf.EmployeeRate < 0 || pf.EmployeeRate > 100 || pf.EmployerRate < 0 || pf.EmployerRate > 100 {
		add("pf rates must be between 0 and 100")
	}
	if pf.Enabled && pf.WageCeiling <= 0 {
		add("pf wage_ceiling must be positive")
	}

	esi := doc.Statutory.ESI
	if esi.EmployeeRate < 0 || esi.EmployeeRate > 100 || esi.EmployerRate < 0 || esi.EmployerRate > 100 {
		add("esi rates must be between 0 and 100")
	}
	if esi.Enabled && esi.GrossThreshold <= 0 {
		add("esi gross_threshold must be positive")
	}

	slabs := append([]PTSlab(nil), doc.Statutory.PT.Slabs...)
	sort.Slice(slabs, func(i, j int) bool { return slabs[i].MinGross < slabs[j].MinGross })
	for i, s := range slabs {
		if s.Amount < 0 || s.MinGross < 0 {
			add("pt slab %d has negative values", i+1)
		}
		if s.MaxGross != 0 && s.MaxGross < s.MinGross {
			add("pt slab %d max_gross is below min_gross", i+1)
		}
		if i > 0 {
			prev := slabs[i-1]
			if prev.MaxGross == 0 || prev.MaxGross >= s.MinGross {
				add("pt slabs %d and %d overlap", i, i+1)
			}
		}
	}

	switch doc.WorkingDayPolicy {
	case PolicyCalendar, PolicyFixed26:
	default:
		add("working_day_policy must be %s or %s", PolicyCalendar, PolicyFixed26)
	}

	if _, err := time.Parse("15:04", doc.LateCutoff); err != nil {
		add("late_cutoff must be HH:MM")
	}
	if doc.HalfDayThresholdHours <= 0 || doc.HalfDayThresholdHours > 24 {
		add("half_day_threshold_hours must be within (0, 24]")
	}
	if doc.Timezone != "" {
		if _, err := time.LoadLocation(doc.Timezone); err != nil {
			add("timezone %q is unknown", doc.Timezone)
		}
	}

	for k, v := range doc.LeaveEntitlements {
		if strings.TrimSpace(k) == "" || v < 0 || v > 366 {
			add("leave entitlement %q is invalid", k)
		}
	}
	for k, v := range doc.ExpenseCategoryLimits {
		if strings.TrimSpace(k) == "" || v < 0 {
			add("expense limit %q is invalid", k)
		}
	}

	sort.Strings(problems)
	return problems
}

// Location resolves the configured timezone, defaulting to UTC.
func (c CompanySettings) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LateCutoffOn returns the cutoff instant on the given local day.
func (c CompanySettings) LateCutoffOn(day time.Time) time.Time {
	loc := c.Location()
	local := day.In(loc)
	hm, err := time.Parse("15:04", c.LateCutoff)
	if err != nil {
		hm = time.Date(0, 1, 1, 9, 30, 0, 0, time.UTC)
	}
	return time.Date(local.Year(), local.Month(), local.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)
}

// WorkingDays applies the working-day policy to a month with daysInMonth days.
func (c CompanySettings) WorkingDays(daysInMonth int) int {
	if c.WorkingDayPolicy == PolicyFixed26 {
		return 26
	}
	return daysInMonth
}
