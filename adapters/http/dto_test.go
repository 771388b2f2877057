package http

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yun0-0514/dev-blog/internal/domain/about"
)

func TestUpdateAboutRequest_NullClearsField(t *testing.T) {
	var req UpdateAboutRequest
	body := `{"id":"6f1c2f1e-5d55-4a5f-9c43-7d1f0f6c1a10","location":null,"projects":null,"title":"Backend"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	patch := req.ToPatch()

	require.NotNil(t, patch.Location)
	assert.Equal(t, "", *patch.Location)
	require.NotNil(t, patch.Projects)
	assert.Empty(t, *patch.Projects)
	require.NotNil(t, patch.Title)
	assert.Equal(t, "Backend", *patch.Title)

	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.TechStacks)
	assert.Nil(t, patch.EducationDetails)
}

func TestUpdateAboutRequest_AppliesOnlySuppliedKeys(t *testing.T) {
	var req UpdateAboutRequest
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","school":null}`), &req))

	content := about.Content{Name: "A", School: "Hanshin", Location: "Seoul"}
	req.ToPatch().Apply(&content)

	assert.Equal(t, about.Content{Name: "A", School: "", Location: "Seoul"}, content)
}

func TestUpdateAboutRequest_MalformedJSON(t *testing.T) {
	var req UpdateAboutRequest
	assert.Error(t, json.Unmarshal([]byte(`{"id":`), &req))
	assert.Error(t, json.Unmarshal([]byte(`{"id":"x","name":42}`), &req))
}
