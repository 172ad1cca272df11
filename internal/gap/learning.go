package gap

import "fmt"

// learningPaths are per-category outline templates for picking up a new
// technology. The %s placeholder is the skill name.
var learningPaths = map[string]string{
	"Language":       "Start with %s fundamentals, practice coding exercises, build projects, then advanced concepts",
	"Framework":      "Learn the prerequisites, then %s basics, practice projects, then advanced patterns",
	"Database":       "Database fundamentals, then %s basics, query optimization, and data modeling",
	"Developer Tool": "Installation and setup, basic %s usage, advanced features, workflow integration",
	"Cloud Platform": "Cloud concepts, then %s basics, services and deployment, operational practices",
}

const defaultLearningPath = "Learn %s fundamentals, practice, advanced topics, then real projects"

// learningTimeEstimates are per-category rough durations to reach working
// proficiency.
var learningTimeEstimates = map[string]string{
	"Language":       "3-6 months",
	"Framework":      "2-4 months",
	"Database":       "2-3 months",
	"Developer Tool": "2-4 weeks",
	"Cloud Platform": "1-3 months",
}

const defaultLearningTime = "1-3 months"

// LearningPath returns the learning outline for a skill in the given
// trend category.
func LearningPath(skill, category string) string {
	template, ok := learningPaths[category]
	if !ok {
		template = defaultLearningPath
	}
	return fmt.Sprintf(template, skill)
}

// EstimateLearningTime returns the rough time-to-proficiency for a trend
// category.
func EstimateLearningTime(category string) string {
	if estimate, ok := learningTimeEstimates[category]; ok {
		return estimate
	}
	return defaultLearningTime
}
