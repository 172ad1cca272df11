package parsing

import (
	"regexp"

	"github.com/jonathan/career-compass/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phoneRe    = regexp.MustCompile(`\+?[\d(][\d\s().\-]{7,}\d`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[a-zA-Z0-9\-_%]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[a-zA-Z0-9\-_]+`)
)

// ExtractContactInfo pulls contact details out of the contact section,
// falling back to the whole text when no contact section was detected.
func ExtractContactInfo(contactSection, fullText string) types.ContactInfo {
	source := contactSection
	if source == "" {
		source = fullText
	}

	return types.ContactInfo{
		Email:    emailRe.FindString(source),
		Phone:    phoneRe.FindString(source),
		LinkedIn: linkedinRe.FindString(source),
		GitHub:   githubRe.FindString(source),
	}
}
