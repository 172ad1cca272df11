// Package gap provides market alignment scoring and skills-gap analysis.
package gap

import "github.com/jonathan/career-compass/internal/types"

// DefaultRole is used when the caller's target role is unrecognized or
// unspecified.
const DefaultRole = "Full Stack Developer"

// DefaultRoleRequirements returns the static role-requirement table.
// Read-only configuration, versioned with the code.
func DefaultRoleRequirements() []types.RoleRequirement {
	return []types.RoleRequirement{
		{
			RoleName:        "Full Stack Developer",
			RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "Node.js", "React", "SQL", "Git"},
			PreferredSkills: []string{"TypeScript", "MongoDB", "Express.js", "Docker", "AWS", "Jest"},
			SoftSkills:      []string{"Problem Solving", "Communication", "Team Work"},
		},
		{
			RoleName:        "Frontend Developer",
			RequiredSkills:  []string{"JavaScript", "HTML", "CSS", "React", "Git"},
			PreferredSkills: []string{"TypeScript", "Vue.js", "Webpack", "SASS", "Jest"},
			SoftSkills:      []string{"Attention to Detail", "Creativity"},
		},
		{
			RoleName:        "Backend Developer",
			RequiredSkills:  []string{"Python", "SQL", "REST API", "Git"},
			PreferredSkills: []string{"Django", "PostgreSQL", "Docker", "Redis", "Microservices"},
			SoftSkills:      []string{"Problem Solving"},
		},
		{
			RoleName:        "Data Scientist",
			RequiredSkills:  []string{"Python", "SQL", "R"},
			PreferredSkills: []string{"TensorFlow", "MongoDB", "Docker"},
			SoftSkills:      []string{"Critical Thinking", "Communication"},
		},
	}
}

// LookupRole finds the requirement profile for a role name, falling back
// to DefaultRole when the name is unrecognized rather than erroring.
func LookupRole(roles []types.RoleRequirement, name string) types.RoleRequirement {
	for _, role := range roles {
		if role.RoleName == name {
			return role
		}
	}
	for _, role := range roles {
		if role.RoleName == DefaultRole {
			return role
		}
	}
	// Degenerate table without the default role: use the first entry.
	if len(roles) > 0 {
		return roles[0]
	}
	return types.RoleRequirement{}
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}
