package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo(t *testing.T) {
	section := `john.doe@example.com
(555) 123-4567
linkedin.com/in/john-doe
github.com/johndoe`

	contact := ExtractContactInfo(section, "")

	assert.Equal(t, "john.doe@example.com", contact.Email)
	assert.Equal(t, "(555) 123-4567", contact.Phone)
	assert.Equal(t, "linkedin.com/in/john-doe", contact.LinkedIn)
	assert.Equal(t, "github.com/johndoe", contact.GitHub)
}

func TestExtractContactInfoFallsBackToFullText(t *testing.T) {
	fullText := "Reach out at jane@example.org or +1 415 555 0100 any time."

	contact := ExtractContactInfo("", fullText)

	assert.Equal(t, "jane@example.org", contact.Email)
	assert.Equal(t, "+1 415 555 0100", contact.Phone)
	assert.Empty(t, contact.LinkedIn)
	assert.Empty(t, contact.GitHub)
}

func TestExtractContactInfoNothingFound(t *testing.T) {
	contact := ExtractContactInfo("no details here", "")

	assert.Empty(t, contact.Email)
	assert.Empty(t, contact.Phone)
	assert.Empty(t, contact.LinkedIn)
	assert.Empty(t, contact.GitHub)
}
