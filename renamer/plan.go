package renamer

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/ldecampos/namecraft/casing"
	"github.com/ldecampos/namecraft/ncerrors"
)

// Rule is one step of a rename plan. Its stages run in a fixed order:
// case conversion, prefix, suffix, renumbering. A rule with Match set
// only touches names containing that substring.
type Rule struct {
	// Match restricts the rule to names containing this substring.
	Match string `yaml:"match,omitempty"`
	// Style converts the name to this case style when set.
	Style casing.Style `yaml:"style,omitempty"`
	// StripDigits removes digit runs during the case conversion.
	StripDigits bool `yaml:"strip_digits,omitempty"`
	// Prefix is joined before the name with Separator.
	Prefix string `yaml:"prefix,omitempty"`
	// Suffix is joined after the name with Separator.
	Suffix string `yaml:"suffix,omitempty"`
	// Separator joins prefix/suffix to the name. Defaults to "_".
	Separator string `yaml:"separator,omitempty"`
	// Renumber replaces the trailing digit run with the name's position
	// in the batch, starting at 1.
	Renumber bool `yaml:"renumber,omitempty"`
	// Pad is the zero-fill width for Renumber. Defaults to 2.
	Pad int `yaml:"pad,omitempty"`
}

// Plan is an ordered list of rename rules applied to a batch of names.
type Plan struct {
	Rules []Rule `yaml:"rules"`
}

// Rename is a single computed rename.
type Rename struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to"   yaml:"to"`
}

// Changed reports whether the rename does anything.
func (r Rename) Changed() bool {
	return r.From != r.To
}

// LoadPlan reads and validates a YAML plan file.
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan: %w", err)
	}
	return ParsePlan(data)
}

// ParsePlan parses and validates YAML plan data.
func ParsePlan(data []byte) (*Plan, error) {
	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks every rule for configuration errors.
func (p *Plan) Validate() error {
	if len(p.Rules) == 0 {
		return &ncerrors.ConfigError{Field: "rules", Message: "plan has no rules"}
	}
	for i, rule := range p.Rules {
		if rule.Style != "" && !casing.IsValidStyle(rule.Style) {
			return &ncerrors.ConfigError{
				Field:   fmt.Sprintf("rules[%d].style", i),
				Value:   string(rule.Style),
				Message: "not a convertible case style",
			}
		}
		if rule.Pad < 0 {
			return &ncerrors.ConfigError{
				Field:   fmt.Sprintf("rules[%d].pad", i),
				Value:   strconv.Itoa(rule.Pad),
				Message: "pad must not be negative",
			}
		}
	}
	return nil
}

// Preview computes the renames the plan would produce for names, in
// order, without touching any graph. Unchanged names are included so the
// caller sees the full batch.
func (p *Plan) Preview(names []string) ([]Rename, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	renames := make([]Rename, 0, len(names))
	for i, name := range names {
		to := name
		for _, rule := range p.Rules {
			next, err := rule.apply(to, i)
			if err != nil {
				return nil, fmt.Errorf("renaming %q: %w", name, err)
			}
			to = next
		}
		renames = append(renames, Rename{From: name, To: to})
	}
	return renames, nil
}

// Apply computes the renames for names and carries them out on the
// graph. Renaming a name the graph does not hold returns an
// *ncerrors.RenameError; computed targets that collide with existing
// nodes are bumped with UniqueName first. The returned renames reflect
// what was actually applied.
func (p *Plan) Apply(g Graph, names []string) ([]Rename, error) {
	renames, err := p.Preview(names)
	if err != nil {
		return nil, err
	}

	applied := make([]Rename, 0, len(renames))
	for _, r := range renames {
		if !r.Changed() {
			applied = append(applied, r)
			continue
		}
		if !g.Exists(r.From) {
			return applied, &ncerrors.RenameError{From: r.From, To: r.To, Message: "node does not exist"}
		}
		target := UniqueName(g, r.To, p.bumpPad())
		if err := g.Rename(r.From, target); err != nil {
			return applied, err
		}
		applied = append(applied, Rename{From: r.From, To: target})
	}
	return applied, nil
}

// bumpPad picks the zero-fill width for collision bumping: the last
// rule's pad when set, the sequencer default otherwise.
func (p *Plan) bumpPad() int {
	for i := len(p.Rules) - 1; i >= 0; i-- {
		if p.Rules[i].Pad > 0 {
			return p.Rules[i].Pad
		}
	}
	return 0
}

var trailingRunPattern = regexp.MustCompile(`\d+$`)

// apply runs the rule's stages on name. index is the name's position in
// the batch, used by Renumber.
func (r Rule) apply(name string, index int) (string, error) {
	if r.Match != "" && !strings.Contains(name, r.Match) {
		return name, nil
	}

	if r.Style != "" {
		var opts []casing.Option
		if r.StripDigits {
			opts = append(opts, casing.StripDigits())
		}
		converted, err := casing.Convert(name, r.Style, opts...)
		if err != nil {
			return "", err
		}
		name = converted
	}

	sep := r.Separator
	if sep == "" {
		sep = "_"
	}
	if r.Prefix != "" {
		name = r.Prefix + sep + name
	}
	if r.Suffix != "" {
		name = name + sep + r.Suffix
	}

	if r.Renumber {
		pad := r.Pad
		if pad <= 0 {
			pad = 2
		}
		base := trailingRunPattern.ReplaceAllString(name, "")
		number := strconv.Itoa(index + 1)
		for len(number) < pad {
			number = "0" + number
		}
		name = base + number
	}
	return name, nil
}
