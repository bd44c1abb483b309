// Package check lints a constructed scene against the house style guide:
// minimum font sizes, palette-only colors, stroke-width conventions, and
// objects straying outside the visible frame.
//
// Checking is advisory by default. The batch renderer logs violations and
// renders anyway; its -strict flag turns any violation into a scene
// failure.
package check

import (
	"fmt"
	"strings"

	"github.com/isoviz/isoviz"
)

// Violation is one style-guide breach found in a scene.
type Violation struct {
	Rule    string // rule identifier, e.g. "min-font-size"
	Path    string // object path within the scene tree
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s: %s", v.Rule, v.Path, v.Message)
}

// Report collects the violations of one scene.
type Report struct {
	Scene      string
	Violations []Violation
}

// OK reports whether the scene passed every rule.
func (r Report) OK() bool { return len(r.Violations) == 0 }

func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%s: ok", r.Scene)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d violation(s)\n", r.Scene, len(r.Violations))
	for _, v := range r.Violations {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	return strings.TrimRight(b.String(), "\n")
}

// Rule checks one convention over a single object. Scene-level rules see
// the root group like any other object.
type Rule interface {
	ID() string
	Check(path string, o isoviz.Object) []Violation
}

// Run builds the scene's timeline, seeks to the end so every object has
// entered the tree, and applies each rule to every object.
func Run(s isoviz.Scene, rules ...Rule) Report {
	report := Report{Scene: s.Name()}
	tl := isoviz.Build(s)
	if err := tl.Seek(tl.Duration()); err != nil {
		report.Violations = append(report.Violations, Violation{
			Rule: "timeline", Path: "/", Message: err.Error(),
		})
		return report
	}

	isoviz.Walk(tl.Root(), func(path string, o isoviz.Object) {
		for _, rule := range rules {
			report.Violations = append(report.Violations, rule.Check(path, o)...)
		}
	})
	return report
}
