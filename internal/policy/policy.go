// Package policy defines the read-only configuration tables that tune
// scoring and classification: severity weights, status thresholds, per-field
// deviation severities, and the security-escalation rule. A Policy is
// constructed once at start-up and passed by reference into the engine; no
// run mutates it, so concurrent runs are safe.
package policy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dshills/specfix/internal/schema"
)

// StatusThreshold maps a minimum health score to a status label. Thresholds
// are evaluated in order; the first satisfied entry wins.
type StatusThreshold struct {
	MinScore float64 `yaml:"min_score"`
	Label    string  `yaml:"label"`
}

// Policy is one named tuning profile.
type Policy struct {
	Name        string
	Description string

	// SeverityWeights are penalty points subtracted from 100 per finding at
	// each severity. The default values are calibration data fit to the
	// reference comparison dataset; see DESIGN.md.
	SeverityWeights map[schema.Severity]float64

	// StatusThresholds translate a health score into an overall status label.
	StatusThresholds []StatusThreshold

	// FallbackStatus is used when no threshold matches.
	FallbackStatus string

	// DeviationSeverities assigns a fixed severity per deviation type.
	DeviationSeverities map[string]schema.Severity

	// EscalateSecurityMissing, when true, raises missing features whose name
	// matches a security pattern from major to critical during bug
	// classification. The dedicated security-requirement mismatch path is
	// always critical regardless of this setting.
	EscalateSecurityMissing bool
}

// defaultWeights reproduce a health score of 33.3 on the reference dataset
// of 1 critical, 3 high, 2 medium, and 2 low findings.
func defaultWeights() map[schema.Severity]float64 {
	return map[schema.Severity]float64{
		schema.SeverityCritical: 24.7,
		schema.SeverityHigh:     10.0,
		schema.SeverityMedium:   4.0,
		schema.SeverityLow:      2.0,
	}
}

func defaultThresholds() []StatusThreshold {
	return []StatusThreshold{
		{MinScore: 80, Label: "Good"},
		{MinScore: 60, Label: "Needs Attention"},
		{MinScore: 40, Label: "Poor"},
	}
}

func defaultDeviationSeverities() map[string]schema.Severity {
	return map[string]schema.Severity{
		schema.TypeConfigurationDeviation:  schema.SeverityMedium,
		schema.TypeImplementationDeviation: schema.SeverityLow,
		schema.TypeStylingDeviation:        schema.SeverityLow,
	}
}

// fallbackStatus is the label used below the lowest threshold.
const fallbackStatus = "Critical Issues Found"

// builtins is the registry of built-in policies keyed by name.
var builtins = map[string]Policy{
	"default": {
		Name:                    "default",
		Description:             "Calibrated defaults; missing security-named features stay major.",
		SeverityWeights:         defaultWeights(),
		StatusThresholds:        defaultThresholds(),
		FallbackStatus:          fallbackStatus,
		DeviationSeverities:     defaultDeviationSeverities(),
		EscalateSecurityMissing: false,
	},
	"strict-security": {
		Name:                    "strict-security",
		Description:             "Escalates missing security-named features from major to critical.",
		SeverityWeights:         defaultWeights(),
		StatusThresholds:        defaultThresholds(),
		FallbackStatus:          fallbackStatus,
		DeviationSeverities:     defaultDeviationSeverities(),
		EscalateSecurityMissing: true,
	},
}

// Load returns the named built-in policy or an error if the name is unknown.
// The maps and threshold slice are copied, so callers mutating the returned
// policy never touch the registry.
func Load(name string) (Policy, error) {
	p, ok := builtins[name]
	if !ok {
		return Policy{}, fmt.Errorf("policy: unknown policy %q (available: default, strict-security)", name)
	}
	weights := make(map[schema.Severity]float64, len(p.SeverityWeights))
	for k, v := range p.SeverityWeights {
		weights[k] = v
	}
	p.SeverityWeights = weights
	devs := make(map[string]schema.Severity, len(p.DeviationSeverities))
	for k, v := range p.DeviationSeverities {
		devs[k] = v
	}
	p.DeviationSeverities = devs
	p.StatusThresholds = append([]StatusThreshold(nil), p.StatusThresholds...)
	return p, nil
}

// Default returns the default policy.
func Default() Policy {
	p, _ := Load("default")
	return p
}

// fileOverrides is the YAML shape of a policy override file. All fields are
// optional; unset fields keep the base profile's values.
type fileOverrides struct {
	Profile                 string             `yaml:"profile"`
	SeverityWeights         map[string]float64 `yaml:"severity_weights"`
	StatusThresholds        []StatusThreshold  `yaml:"status_thresholds"`
	EscalateSecurityMissing *bool              `yaml:"escalate_security_missing"`
}

// LoadFile reads a YAML override file and applies it on top of the base
// profile it names (default when unnamed).
func LoadFile(path string) (Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Policy{}, fmt.Errorf("policy: read %s: %w", path, err)
	}
	var ov fileOverrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return Policy{}, fmt.Errorf("policy: parse %s: %w", path, err)
	}

	base := "default"
	if ov.Profile != "" {
		base = ov.Profile
	}
	p, err := Load(base)
	if err != nil {
		return Policy{}, err
	}

	// Load already copied the maps, so overlaying cannot reach the builtins.
	for k, v := range ov.SeverityWeights {
		sev := schema.Severity(k)
		switch sev {
		case schema.SeverityCritical, schema.SeverityHigh,
			schema.SeverityMedium, schema.SeverityLow:
			p.SeverityWeights[sev] = v
		default:
			return Policy{}, fmt.Errorf("policy: %s: unknown severity %q in severity_weights", path, k)
		}
	}
	if len(ov.StatusThresholds) > 0 {
		p.StatusThresholds = ov.StatusThresholds
	}
	if ov.EscalateSecurityMissing != nil {
		p.EscalateSecurityMissing = *ov.EscalateSecurityMissing
	}
	p.Name = p.Name + "+" + path
	return p, nil
}
