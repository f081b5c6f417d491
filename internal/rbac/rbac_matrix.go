package rbac

import (
	"sort"
	"strings"

	"sharda-hr/internal/domain"
)

const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"
)

// rolePriority orders roles from most to least privileged.
var rolePriority = []string{RoleAdmin, RoleHR, RoleManager, RoleEmployee}

type Grant struct {
	Resource string
	Action   string
}

var allActions = []string{
	domain.ActionRead, domain.ActionReadAll, domain.ActionCreate, domain.ActionUpdate,
	domain.ActionDelete, domain.ActionApprove, domain.ActionProcess, domain.ActionLock,
}

var allResources = []string{
	domain.ResourceEmployee, domain.ResourceDepartment, domain.ResourceSalary,
	domain.ResourceAttendance, domain.ResourceLeave, domain.ResourcePayroll,
	domain.ResourceFeedback, domain.ResourceContractLabour, domain.ResourceExpense,
	domain.ResourceImport, domain.ResourceSettings, domain.ResourceRole,
}

func grants(resource string, actions ...string) []Grant {
	out := make([]Grant, 0, len(actions))
	for _, a := range actions {
		out = append(out, Grant{Resource: resource, Action: a})
	}
	return out
}

func concat(groups ...[]Grant) []Grant {
	var out []Grant
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// DefaultMatrix returns the permission set seeded for each built-in role.
func DefaultMatrix() map[string][]Grant {
	var admin []Grant
	for _, r := range allResources {
		admin = append(admin, grants(r, allActions...)...)
	}

	const (
		read    = domain.ActionRead
		readAll = domain.ActionReadAll
		create  = domain.ActionCreate
		update  = domain.ActionUpdate
		del     = domain.ActionDelete
		approve = domain.ActionApprove
		process = domain.ActionProcess
	)

	hr := concat(
		grants(domain.ResourceEmployee, read, readAll, create, update, del),
		grants(domain.ResourceDepartment, read, readAll, create, update, del),
		grants(domain.ResourceSalary, read, readAll, create, update, del),
		grants(domain.ResourceAttendance, read, readAll, create, update, del),
		grants(domain.ResourceLeave, read, readAll, create, update, del, approve),
		grants(domain.ResourcePayroll, read, readAll, create, process),
		grants(domain.ResourceFeedback, read, readAll, create, update, del),
		grants(domain.ResourceContractLabour, read, readAll, create, update, del, process),
		grants(domain.ResourceExpense, read, readAll, create, update, del, approve),
		grants(domain.ResourceImport, read, create),
		grants(domain.ResourceSettings, read, update),
	)

	manager := concat(
		grants(domain.ResourceEmployee, read, readAll),
		grants(domain.ResourceDepartment, read),
		grants(domain.ResourceAttendance, read, readAll, create, update),
		grants(domain.ResourceLeave, read, readAll, create, update, del, approve),
		grants(domain.ResourcePayroll, read),
		grants(domain.ResourceFeedback, read, readAll, create),
		grants(domain.ResourceContractLabour, read, readAll, create),
		grants(domain.ResourceExpense, read, readAll, create, update, del, approve),
		grants(domain.ResourceSettings, read),
	)

	employee := concat(
		grants(domain.ResourceEmployee, read),
		grants(domain.ResourceDepartment, read),
		grants(domain.ResourceAttendance, read, create),
		grants(domain.ResourceLeave, read, create, update, del),
		grants(domain.ResourcePayroll, read),
		grants(domain.ResourceFeedback, read, create),
		grants(domain.ResourceExpense, read, create, update, del),
		grants(domain.ResourceSettings, read),
	)

	return map[string][]Grant{
		RoleAdmin:    admin,
		RoleHR:       hr,
		RoleManager:  manager,
		RoleEmployee: employee,
	}
}

// IsBuiltInRole reports whether name (any case) is one of the seeded roles.
func IsBuiltInRole(name string) bool {
	name = strings.ToUpper(strings.TrimSpace(name))
	for _, r := range rolePriority {
		if r == name {
			return true
		}
	}
	return false
}

// HighestRole picks the most privileged of roles; unknown names sort last.
func HighestRole(roles []string) string {
	if len(roles) == 0 {
		return ""
	}
	rank := func(r string) int {
		for i, p := range rolePriority {
			if strings.EqualFold(p, r) {
				return i
			}
		}
		return len(rolePriority)
	}
	sorted := append([]string(nil), roles...)
	sort.SliceStable(sorted, func(i, j int) bool { return rank(sorted[i]) < rank(sorted[j]) })
	return strings.ToUpper(sorted[0])
}
