// Package project loads scheduling snapshots from YAML or JSON files and
// hands them to the engine as a start date plus a flat task list.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/Nabzillaa/project-management-automation-sub000/internal/graph"
	"github.com/Nabzillaa/project-management-automation-sub000/internal/pert"
)

// DateLayout is the on-disk format for project start dates.
const DateLayout = "2006-01-02"

// Project is one scheduling snapshot: a start date plus the task list that
// the graph builder consumes.
type Project struct {
	Name  string
	Start time.Time
	Tasks []graph.Task
}

// fileProject mirrors the on-disk schema shared by the YAML and JSON forms.
type fileProject struct {
	Name  string     `yaml:"name"`
	Start string     `yaml:"start"`
	Tasks []fileTask `yaml:"tasks"`
}

type fileTask struct {
	ID        string        `yaml:"id"`
	Title     string        `yaml:"title"`
	Duration  float64       `yaml:"duration"`
	DependsOn []string      `yaml:"depends_on"`
	Estimate  *fileEstimate `yaml:"estimate"`
}

type fileEstimate struct {
	Optimistic  float64 `yaml:"optimistic"`
	MostLikely  float64 `yaml:"most_likely"`
	Pessimistic float64 `yaml:"pessimistic"`
}

// Load reads a project file, dispatching on extension: .yaml/.yml or .json.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".json":
		return ParseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported project file type %q (want .yaml, .yml, or .json)", filepath.Ext(path))
	}
}

// ParseYAML parses a YAML project document.
func ParseYAML(data []byte) (*Project, error) {
	var fp fileProject
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return nil, fmt.Errorf("parse YAML project: %w", err)
	}
	return fp.build()
}

// ParseJSON parses a JSON project document. Fields are extracted leniently:
// unknown keys are ignored and missing optional fields default to zero.
func ParseJSON(data []byte) (*Project, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parse JSON project: invalid document")
	}
	doc := gjson.ParseBytes(data)

	fp := fileProject{
		Name:  doc.Get("name").String(),
		Start: doc.Get("start").String(),
	}

	doc.Get("tasks").ForEach(func(_, item gjson.Result) bool {
		ft := fileTask{
			ID:       item.Get("id").String(),
			Title:    item.Get("title").String(),
			Duration: item.Get("duration").Float(),
		}
		item.Get("depends_on").ForEach(func(_, dep gjson.Result) bool {
			ft.DependsOn = append(ft.DependsOn, dep.String())
			return true
		})
		if est := item.Get("estimate"); est.Exists() {
			ft.Estimate = &fileEstimate{
				Optimistic:  est.Get("optimistic").Float(),
				MostLikely:  est.Get("most_likely").Float(),
				Pessimistic: est.Get("pessimistic").Float(),
			}
		}
		fp.Tasks = append(fp.Tasks, ft)
		return true
	})

	return fp.build()
}

// build converts the file schema into engine input. Tasks that carry a
// three-point estimate and no explicit duration get the PERT expected value
// as their duration.
func (fp *fileProject) build() (*Project, error) {
	if fp.Start == "" {
		return nil, fmt.Errorf("project start date is required (%s)", DateLayout)
	}
	start, err := time.Parse(DateLayout, fp.Start)
	if err != nil {
		return nil, fmt.Errorf("parse project start date %q: %w", fp.Start, err)
	}

	p := &Project{
		Name:  fp.Name,
		Start: start,
		Tasks: make([]graph.Task, 0, len(fp.Tasks)),
	}

	for _, ft := range fp.Tasks {
		if ft.ID == "" {
			return nil, fmt.Errorf("project task without an id")
		}

		duration := ft.Duration
		if ft.Estimate != nil && duration == 0 {
			est, err := pert.New(ft.Estimate.Optimistic, ft.Estimate.MostLikely, ft.Estimate.Pessimistic)
			if err != nil {
				return nil, fmt.Errorf("task %s: %w", ft.ID, err)
			}
			duration = est.Expected
		}

		p.Tasks = append(p.Tasks, graph.Task{
			ID:        ft.ID,
			Title:     ft.Title,
			Duration:  duration,
			DependsOn: ft.DependsOn,
		})
	}

	return p, nil
}
