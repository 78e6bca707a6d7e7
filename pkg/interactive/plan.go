package interactive

import (
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/formats"
	"github.com/ajxudir/depcheck/pkg/output"
)

// PlanOptions controls how install commands are written.
//
// Fields:
//   - Installer: "npm" or "yarn"; empty means npm
//   - SaveExact: Pin the exact latest version instead of a caret range
//   - Global: Write a single global install command
type PlanOptions struct {
	Installer string
	SaveExact bool
	Global    bool
}

// Plan is the set of installer commands that would apply a selection.
type Plan struct {
	opts     PlanOptions
	prod     []string
	dev      []string
	packages []string
}

// BuildPlan builds the install plan for the selected records.
//
// It performs the following operations:
//   - Step 1: Writes one package argument per record: name@^latest, or name@latest with SaveExact
//   - Step 2: Splits arguments into regular and dev dependencies
//   - Step 3: Global plans keep every argument in one command
//
// Parameters:
//   - selected: Selected records in display order
//   - opts: Installer options
//
// Returns:
//   - Plan: The plan; it has no commands when selected is empty
func BuildPlan(selected []formats.Record, opts PlanOptions) Plan {
	p := Plan{opts: opts}
	for _, r := range selected {
		arg := packageArg(r, opts.SaveExact)
		p.packages = append(p.packages, arg)
		if r.DevDependency && !opts.Global {
			p.dev = append(p.dev, arg)
		} else {
			p.prod = append(p.prod, arg)
		}
	}
	return p
}

// Commands returns the command lines in order: regular dependencies first, then dev dependencies.
func (p Plan) Commands() []string {
	var cmds []string
	if len(p.prod) > 0 {
		cmds = append(cmds, p.command(false, p.prod))
	}
	if len(p.dev) > 0 {
		cmds = append(cmds, p.command(true, p.dev))
	}
	return cmds
}

// Summary returns the package arguments joined by ", ".
func (p Plan) Summary() string {
	return strings.Join(p.packages, ", ")
}

// IsEmpty reports whether the plan has nothing to install.
func (p Plan) IsEmpty() bool {
	return len(p.packages) == 0
}

func (p Plan) command(dev bool, args []string) string {
	var prefix []string
	switch p.opts.Installer {
	case constants.InstallerYarn:
		switch {
		case p.opts.Global:
			prefix = []string{"yarn", "global", "add"}
		case dev:
			prefix = []string{"yarn", "add", "--dev"}
		default:
			prefix = []string{"yarn", "add"}
		}
	default:
		switch {
		case p.opts.Global:
			prefix = []string{"npm", "install", "--global"}
		case dev:
			prefix = []string{"npm", "install", "--save-dev"}
		default:
			prefix = []string{"npm", "install", "--save"}
		}
	}
	return strings.Join(append(prefix, args...), " ")
}

func packageArg(r formats.Record, exact bool) string {
	if exact {
		return r.Name + "@" + r.Latest
	}
	return r.Name + "@^" + r.Latest
}

// SelectionResult converts a selection and its plan into structured output form.
//
// Parameters:
//   - selected: The selected records, in display order
//   - plan: The plan built from them
//
// Returns:
//   - *output.SelectionResult: The selected packages and command lines
func SelectionResult(selected []formats.Record, plan Plan) *output.SelectionResult {
	result := &output.SelectionResult{
		Selected: make([]output.MenuPackage, 0, len(selected)),
		Commands: plan.Commands(),
	}
	if result.Commands == nil {
		result.Commands = []string{}
	}
	for _, r := range selected {
		if c, ok := NewChoice(r); ok {
			result.Selected = append(result.Selected, MenuPackage(c))
		}
	}
	return result
}
