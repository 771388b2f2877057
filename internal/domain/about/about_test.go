package about

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile_IsFreshEachCall(t *testing.T) {
	a := DefaultProfile()
	a.Name = "changed"
	a.TechStacks[0].Skills[0] = "changed"

	b := DefaultProfile()
	assert.Equal(t, "박윤영", b.Name)
	assert.Equal(t, "React", b.TechStacks[0].Skills[0])
	assert.False(t, b.Persisted())
	assert.False(t, b.IsActive)
	assert.Empty(t, b.CreatedBy)
}

func TestPatch_ApplyOnlySuppliedFields(t *testing.T) {
	c := DefaultProfile().Content
	name := "Kim"
	stacks := []TechStack{{Category: "Go", Skills: []string{"gin", "pgx"}}}

	Patch{Name: &name, TechStacks: &stacks}.Apply(&c)

	assert.Equal(t, "Kim", c.Name)
	assert.Equal(t, stacks, c.TechStacks)
	assert.Equal(t, DefaultProfile().Title, c.Title)
	assert.Equal(t, DefaultProfile().Projects, c.Projects)
}

func TestPatch_ApplyCanClearField(t *testing.T) {
	c := DefaultProfile().Content
	empty := ""
	none := []string{}

	Patch{Location: &empty, EducationDetails: &none}.Apply(&c)

	assert.Equal(t, "", c.Location)
	assert.Empty(t, c.EducationDetails)
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	email := "a@b.c"
	assert.False(t, Patch{Email: &email}.IsEmpty())
}

func TestContent_NormalizeEncodesEmptyArrays(t *testing.T) {
	p := Profile{ID: uuid.New(), Content: Content{Name: "A", Projects: []Project{{Title: "x"}}}}
	p.Normalize()

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []any{}, decoded["tech_stacks"])
	assert.Equal(t, []any{}, decoded["experience_details"])
	assert.Equal(t, "A", decoded["name"])

	projects := decoded["projects"].([]any)
	assert.Equal(t, []any{}, projects[0].(map[string]any)["features"])
}
