// Package skills provides skill and entity extraction from resume text.
package skills

import "github.com/jonathan/career-compass/internal/types"

// Database is the static, categorized skill vocabulary the extractor
// matches against. Read-only configuration, versioned with the code;
// loaded once and passed by reference.
type Database struct {
	Technical map[types.SkillCategory][]string `json:"technical"`
	Soft      []string                         `json:"soft"`
}

// Empty reports whether the database has no technical skills. An empty
// database yields an empty extraction result, not an error.
func (db *Database) Empty() bool {
	if db == nil {
		return true
	}
	for _, names := range db.Technical {
		if len(names) > 0 {
			return false
		}
	}
	return true
}

// DefaultDatabase returns the built-in skill vocabulary.
func DefaultDatabase() *Database {
	return &Database{
		Technical: map[types.SkillCategory][]string{
			types.CategoryProgrammingLanguage: {
				"JavaScript", "Python", "Java", "TypeScript", "C++", "C#", "Go", "Rust",
				"PHP", "Ruby", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
			},
			types.CategoryFramework: {
				"React", "Angular", "Vue.js", "Node.js", "Express.js", "Django", "Flask",
				"Spring", "Laravel", "Ruby on Rails", "ASP.NET", "Next.js", "Nuxt.js",
				"Svelte", "Ember.js", "Backbone.js", "jQuery",
			},
			types.CategoryDatabase: {
				"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle",
				"SQL Server", "Cassandra", "DynamoDB", "Elasticsearch", "Neo4j", "SQL",
			},
			types.CategoryCloudPlatform: {
				"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Heroku",
				"DigitalOcean", "Vercel", "Netlify", "Firebase",
			},
			types.CategoryTool: {
				"Git", "Jenkins", "Jira", "Slack", "VS Code", "IntelliJ", "Eclipse",
				"Webpack", "Babel", "ESLint", "Prettier", "Postman", "Figma",
				"HTML", "CSS",
			},
			types.CategoryMethodology: {
				"Agile", "Scrum", "Kanban", "DevOps", "CI/CD", "TDD", "BDD",
				"Microservices", "REST API", "GraphQL", "Serverless", "Jest",
			},
		},
		Soft: []string{
			"Leadership", "Communication", "Problem Solving", "Team Work",
			"Project Management", "Critical Thinking", "Creativity", "Adaptability",
			"Time Management", "Attention to Detail", "Customer Service",
		},
	}
}
