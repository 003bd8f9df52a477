package authroles

import (
	domainauth "github.com/stackfall/workdesk/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups by simple string membership rules.
type StaticRoleMapper struct {
	AdminGroup string
	StaffGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.StaffGroup != "" && g == m.StaffGroup {
			return domainauth.RoleStaff
		}
	}
	return domainauth.RoleGuest
}
