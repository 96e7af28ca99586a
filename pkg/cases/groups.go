package cases

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/review-flow.yml
var defaultFlowFS embed.FS

// Identity names who must be driving the browser when a group starts.
type Identity string

// Identity values for flow groups.
const (
	IdentityAnonymous Identity = "anonymous"
	IdentityMember    Identity = "member"
)

// Precondition names the page state a group needs before its first case.
type Precondition string

// Precondition values for flow groups. PrecondNone means the group runs
// against whatever state the previous group left behind.
const (
	PrecondNone         Precondition = ""
	PrecondFormEmpty    Precondition = "form-empty"
	PrecondReviewExists Precondition = "review-exists"
)

// Group is one ordered stage of a flow: the cases it runs and the state it
// requires. Case order inside a group is execution order.
type Group struct {
	Name         string       `yaml:"name"`
	Identity     Identity     `yaml:"identity"`
	Precondition Precondition `yaml:"precondition"`
	CaseIDs      []string     `yaml:"cases"`
}

// Flow is the full execution plan for a stateful suite.
type Flow struct {
	Groups []Group `yaml:"groups"`
}

// DefaultFlow returns the embedded review-suite execution plan.
func DefaultFlow() Flow {
	f, err := parseFlow(mustReadDefault())
	if err != nil {
		// embedded manifest is validated by tests, a parse failure here is a
		// build defect
		panic(fmt.Sprintf("embedded flow manifest invalid: %v", err))
	}
	return f
}

// LoadFlow reads a flow manifest from disk, falling back to the embedded plan
// when path is empty.
func LoadFlow(path string) (Flow, error) {
	if path == "" {
		return DefaultFlow(), nil
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-provided
	if err != nil {
		return Flow{}, fmt.Errorf("read flow manifest %s: %w", path, err)
	}
	f, err := parseFlow(data)
	if err != nil {
		return Flow{}, fmt.Errorf("flow manifest %s: %w", path, err)
	}
	return f, nil
}

func parseFlow(data []byte) (Flow, error) {
	var f Flow
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Flow{}, fmt.Errorf("parse yaml: %w", err)
	}
	if len(f.Groups) == 0 {
		return Flow{}, fmt.Errorf("no groups defined")
	}
	seen := map[string]string{}
	for _, g := range f.Groups {
		if g.Name == "" {
			return Flow{}, fmt.Errorf("group with empty name")
		}
		if g.Identity != IdentityAnonymous && g.Identity != IdentityMember {
			return Flow{}, fmt.Errorf("group %s: unknown identity %q", g.Name, g.Identity)
		}
		switch g.Precondition {
		case PrecondNone, PrecondFormEmpty, PrecondReviewExists:
		default:
			return Flow{}, fmt.Errorf("group %s: unknown precondition %q", g.Name, g.Precondition)
		}
		if len(g.CaseIDs) == 0 {
			return Flow{}, fmt.Errorf("group %s: no cases", g.Name)
		}
		for _, id := range g.CaseIDs {
			if prev, ok := seen[id]; ok {
				return Flow{}, fmt.Errorf("case %s listed in both %s and %s", id, prev, g.Name)
			}
			seen[id] = g.Name
		}
	}
	return f, nil
}

// Select orders loaded cases by the flow plan. Cases the plan does not mention
// are returned in extra, still in workbook order, so the runner can report
// them as skipped rather than losing them silently. Plan ids with no matching
// case are ignored, the workbook is the source of truth for what exists.
func (f Flow) Select(all []Case) (groups [][]Case, extra []Case) {
	byID := make(map[string]Case, len(all))
	used := make(map[string]bool, len(all))
	for _, c := range all {
		byID[c.ID] = c
	}
	groups = make([][]Case, len(f.Groups))
	for i, g := range f.Groups {
		for _, id := range g.CaseIDs {
			if c, ok := byID[id]; ok {
				groups[i] = append(groups[i], c)
				used[id] = true
			}
		}
	}
	for _, c := range all {
		if !used[c.ID] {
			extra = append(extra, c)
		}
	}
	return groups, extra
}

func mustReadDefault() []byte {
	data, err := defaultFlowFS.ReadFile("defaults/review-flow.yml")
	if err != nil {
		panic(fmt.Sprintf("embedded flow manifest missing: %v", err))
	}
	return data
}
