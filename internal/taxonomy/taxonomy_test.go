package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/ats-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize_RuleOrder(t *testing.T) {
	tax := Default()

	// Tool containment wins over the technical skill list: Git is both.
	assert.Equal(t, types.CategoryTool, tax.Categorize("git"))
	assert.Equal(t, types.CategoryTool, tax.Categorize("docker"))
	assert.Equal(t, types.CategoryTool, tax.Categorize("github actions")) // contains "git"

	assert.Equal(t, types.CategorySoftSkill, tax.Categorize("leadership"))
	assert.Equal(t, types.CategorySoftSkill, tax.Categorize("strong communication"))

	assert.Equal(t, types.CategoryHardSkill, tax.Categorize("python"))
	assert.Equal(t, types.CategoryHardSkill, tax.Categorize("C++"))

	// Anything unrecognized is a concept
	assert.Equal(t, types.CategoryConcept, tax.Categorize("event-driven"))
	assert.Equal(t, types.CategoryConcept, tax.Categorize("machine learning"))
}

func TestIsStopWord(t *testing.T) {
	tax := Default()

	assert.True(t, tax.IsStopWord("the"))
	assert.True(t, tax.IsStopWord("The"))
	assert.False(t, tax.IsStopWord("python"))
	assert.False(t, tax.IsStopWord(""))
}

func TestDefault_ListsNonEmpty(t *testing.T) {
	tax := Default()

	assert.NotEmpty(t, tax.TechSkills())
	assert.NotEmpty(t, tax.PhrasePatterns())
}

func TestLoadFile_OverridesListedFields(t *testing.T) {
	path := writeTaxonomyFile(t, `{
		"techSkills": ["Cobol"],
		"toolNames": ["Vim"]
	}`)

	tax, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Cobol"}, tax.TechSkills())
	assert.Equal(t, types.CategoryHardSkill, tax.Categorize("cobol"))
	// Tool names are lowercased on load
	assert.Equal(t, types.CategoryTool, tax.Categorize("vim"))
	// Python is no longer a listed skill under the override
	assert.Equal(t, types.CategoryConcept, tax.Categorize("python"))
	// Omitted lists keep their defaults
	assert.True(t, tax.IsStopWord("the"))
	assert.NotEmpty(t, tax.PhrasePatterns())
}

func TestLoadFile_RejectsUnknownFields(t *testing.T) {
	path := writeTaxonomyFile(t, `{"keywords": ["python"]}`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid taxonomy file")
}

func TestLoadFile_RejectsWrongTypes(t *testing.T) {
	path := writeTaxonomyFile(t, `{"techSkills": "python"}`)

	_, err := LoadFile(path)
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func writeTaxonomyFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
