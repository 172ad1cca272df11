package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestFindMentions(t *testing.T) {
	text := "Built payment services in Go. Mentored juniors on Golang best practices."

	mentions := FindMentions(text, "Go")

	require.Len(t, mentions, 2)
	assert.Equal(t, "Go", mentions[0].SkillName)
	assert.Equal(t, "Go", mentions[0].Variation)
	assert.Equal(t, "Golang", mentions[1].Variation)
	assert.Less(t, mentions[0].Position, mentions[1].Position)

	assert.Equal(t, "Built payment services in Go", mentions[0].Sentence)
	assert.Contains(t, mentions[0].Context, "payment services")
}

func TestFindMentionsNone(t *testing.T) {
	assert.Empty(t, FindMentions("nothing relevant here", "Rust"))
}

func TestFindMentionsPositionWithSymbolName(t *testing.T) {
	text := "Ten years of C++ experience."

	mentions := FindMentions(text, "C++")

	require.Len(t, mentions, 1)
	assert.Equal(t, 13, mentions[0].Position)
	assert.Equal(t, "C++", text[mentions[0].Position:mentions[0].Position+3])
}

func TestDeduplicateMentions(t *testing.T) {
	mentions := []types.SkillMention{
		{SkillName: "Node.js", Variation: "NodeJS", Position: 10},
		{SkillName: "Node.js", Variation: "Node js", Position: 10},
		{SkillName: "Node.js", Variation: "NodeJS", Position: 40},
	}

	result := deduplicateMentions(mentions)

	require.Len(t, result, 2)
	// On equal positions the longer variation wins.
	assert.Equal(t, "Node js", result[0].Variation)
	assert.Equal(t, 40, result[1].Position)
}
