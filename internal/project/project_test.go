package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlDoc = `name: Website relaunch
start: 2026-01-05
tasks:
  - id: design
    title: Design mockups
    duration: 3
  - id: build
    title: Build pages
    duration: 4
    depends_on: [design]
  - id: content
    title: Write content
    depends_on: [design]
    estimate:
      optimistic: 10
      most_likely: 15
      pessimistic: 20
`

const jsonDoc = `{
  "name": "Website relaunch",
  "start": "2026-01-05",
  "tasks": [
    {"id": "design", "title": "Design mockups", "duration": 3},
    {"id": "build", "title": "Build pages", "duration": 4, "depends_on": ["design"]},
    {"id": "content", "title": "Write content", "depends_on": ["design"],
     "estimate": {"optimistic": 10, "most_likely": 15, "pessimistic": 20}}
  ]
}`

func TestParseYAML(t *testing.T) {
	p, err := ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)

	assert.Equal(t, "Website relaunch", p.Name)
	assert.Equal(t, time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), p.Start)
	require.Len(t, p.Tasks, 3)

	assert.Equal(t, "design", p.Tasks[0].ID)
	assert.Equal(t, 3.0, p.Tasks[0].Duration)
	assert.Equal(t, []string{"design"}, p.Tasks[1].DependsOn)
}

func TestParseYAML_EstimateDerivedDuration(t *testing.T) {
	p, err := ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)

	// content has no explicit duration, so it gets the PERT expected value.
	assert.Equal(t, 15.0, p.Tasks[2].Duration)
}

func TestParseJSON_MatchesYAML(t *testing.T) {
	fromYAML, err := ParseYAML([]byte(yamlDoc))
	require.NoError(t, err)
	fromJSON, err := ParseJSON([]byte(jsonDoc))
	require.NoError(t, err)

	assert.Equal(t, fromYAML.Name, fromJSON.Name)
	assert.True(t, fromYAML.Start.Equal(fromJSON.Start))
	assert.Equal(t, fromYAML.Tasks, fromJSON.Tasks)
}

func TestParseYAML_ExplicitDurationWinsOverEstimate(t *testing.T) {
	doc := `start: 2026-01-05
tasks:
  - id: a
    duration: 2
    estimate: {optimistic: 10, most_likely: 15, pessimistic: 20}
`
	p, err := ParseYAML([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Tasks[0].Duration)
}

func TestParseYAML_InvalidEstimate(t *testing.T) {
	doc := `start: 2026-01-05
tasks:
  - id: a
    estimate: {optimistic: 20, most_likely: 15, pessimistic: 10}
`
	_, err := ParseYAML([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a")
}

func TestParseYAML_MissingStart(t *testing.T) {
	_, err := ParseYAML([]byte("tasks:\n  - id: a\n    duration: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start date")
}

func TestParseYAML_BadStartDate(t *testing.T) {
	_, err := ParseYAML([]byte("start: 05/01/2026\ntasks: []\n"))
	require.Error(t, err)
}

func TestParseYAML_TaskWithoutID(t *testing.T) {
	_, err := ParseYAML([]byte("start: 2026-01-05\ntasks:\n  - duration: 1\n"))
	require.Error(t, err)
}

func TestParseJSON_InvalidDocument(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	require.Error(t, err)
}

func TestLoad_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "plan.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0644))
	jsonPath := filepath.Join(dir, "plan.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0644))

	fromYAML, err := Load(yamlPath)
	require.NoError(t, err)
	fromJSON, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, fromYAML.Tasks, fromJSON.Tasks)

	badPath := filepath.Join(dir, "plan.toml")
	require.NoError(t, os.WriteFile(badPath, []byte(""), 0644))
	_, err = Load(badPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
