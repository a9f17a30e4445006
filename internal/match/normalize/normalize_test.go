package normalize

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases and trims", "  Python  ", "python"},
		{"folds hyphens", "Back-End", "back end"},
		{"folds underscores", "machine_learning", "machine learning"},
		{"collapses whitespace", "api   design", "api design"},
		{"applies alias", "K8s", "kubernetes"},
		{"alias with dot", "Node.js", "nodejs"},
		{"alias rest", "REST", "rest apis"},
		{"unmapped passes through", "blender", "blender"},
		{"empty input", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Token(tt.input))
		})
	}
}

func TestExtractSkills_DelimitedList(t *testing.T) {
	skills := ExtractSkills("Python, SQL, Docker; Kubernetes | Redis")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "sql")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "kubernetes")
	assert.Contains(t, skills, "redis")
	assert.True(t, sort.StringsAreSorted(skills))
}

func TestExtractSkills_DeduplicatesAliases(t *testing.T) {
	skills := ExtractSkills("js, JavaScript, JS")

	count := 0
	for _, s := range skills {
		if s == "javascript" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractSkills_RecognizesSkillsInProse(t *testing.T) {
	skills := ExtractSkills("Five years building services with Python and PostgreSQL, deployed on Kubernetes")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "postgresql")
	assert.Contains(t, skills, "kubernetes")
}

func TestExtractSkills_Idempotent(t *testing.T) {
	first := ExtractSkills("Python, SQL, Docker")
	second := ExtractSkills(strings.Join(first, ", "))

	assert.Equal(t, first, second)
}

func TestExtractSkills_Empty(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("  ,,; "))
}

func TestListedItems_PreservesDuplicates(t *testing.T) {
	listed := ListedItems("Python, python, JS")

	assert.Equal(t, []string{"python", "python", "javascript"}, listed)
}

func TestTokenize_DropsStopwords(t *testing.T) {
	words := Tokenize("working with data and the cloud")

	assert.Contains(t, words, "working")
	assert.Contains(t, words, "data")
	assert.Contains(t, words, "cloud")
	assert.NotContains(t, words, "with")
	assert.NotContains(t, words, "and")
	assert.NotContains(t, words, "the")
}
