// Package compare reconciles an enhanced specification against a feature map
// across six entity categories and produces a complete comparison report.
// The comparison is pure computation over immutable inputs: two calls with
// identical inputs and the same clock yield byte-identical reports.
package compare

import (
	"fmt"
	"time"

	"github.com/dshills/specfix/internal/match"
	"github.com/dshills/specfix/internal/policy"
	"github.com/dshills/specfix/internal/schema"
	"github.com/dshills/specfix/internal/score"
)

// extraRecommendation is the fixed recommendation attached to every extra
// finding.
const extraRecommendation = "Consider if this feature adds value or should be removed"

// Comparator reconciles spec and implementation entity collections.
// The zero value is not usable; construct with New.
type Comparator struct {
	pol policy.Policy

	// Now supplies the report timestamp. Defaults to time.Now; tests pin it
	// for reproducible output.
	Now func() time.Time
}

// New returns a Comparator using the given policy.
func New(pol policy.Policy) *Comparator {
	return &Comparator{pol: pol, Now: time.Now}
}

// Compare produces a comparison report for spec against impl.
//
// Findings appear in fixed category order (core features, UI components, API
// endpoints, data flows, business rules, security requirements) and, within
// a category, in the input order of the entities that produced them. Missing
// and deviation findings follow spec order; extra findings follow impl
// order. The cross-cutting logical checks run after per-category matching,
// data-flow checks before security checks, each in spec order.
//
// Returns *schema.InvalidInputError when either input is nil or a required
// container field is absent. Entities with missing optional attributes never
// mismatch; the absent field is a wildcard.
func (c *Comparator) Compare(spec *schema.EnhancedSpecification, impl *schema.FeatureMap) (*schema.ComparisonReport, error) {
	if err := validateInputs(spec, impl); err != nil {
		return nil, err
	}

	report := &schema.ComparisonReport{
		MissingFeatures:   []schema.MissingFeature{},
		Deviations:        []schema.Deviation{},
		LogicalMismatches: []schema.LogicalMismatch{},
		ExtraFeatures:     []schema.ExtraFeature{},
	}

	c.compareCoreFeatures(report, spec.CoreFeatures, impl.Features)
	c.compareUIComponents(report, spec.UIComponents, impl.UIComponents)
	c.compareAPIEndpoints(report, spec.APIEndpoints, impl.APIEndpoints)
	c.compareDataFlows(report, spec.DataFlow, impl.DataFlow)
	c.compareRules(report, schema.TagBusinessRule, spec.BusinessRules, impl.BusinessLogic)
	c.compareRules(report, schema.TagSecurityRequirement, spec.SecurityRequirements, impl.SecurityFeatures)

	c.checkDataFlowDirections(report, spec.DataFlow, impl.DataFlow)
	c.checkSecurityRequirements(report, spec.SecurityRequirements, impl.SecurityFeatures)

	report.Summary = score.Summarize(report, c.pol)
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	report.Metadata = schema.Metadata{
		ComparisonTimestamp: now().UTC().Format(time.RFC3339),
		SpecEntityCount:     specEntityCount(spec),
		ImplEntityCount:     implEntityCount(impl),
		FormatVersion:       schema.FormatVersion,
	}
	return report, nil
}

// validateInputs rejects absent inputs and missing required containers.
// Optional attributes inside entities are never validated here.
func validateInputs(spec *schema.EnhancedSpecification, impl *schema.FeatureMap) error {
	if spec == nil {
		return &schema.InvalidInputError{Field: "enhanced_specification", Reason: "required"}
	}
	if impl == nil {
		return &schema.InvalidInputError{Field: "feature_map", Reason: "required"}
	}
	containers := []struct {
		field  string
		absent bool
	}{
		{"enhanced_specification.core_features", spec.CoreFeatures == nil},
		{"enhanced_specification.ui_components", spec.UIComponents == nil},
		{"enhanced_specification.api_endpoints", spec.APIEndpoints == nil},
		{"enhanced_specification.data_flow", spec.DataFlow == nil},
		{"enhanced_specification.business_rules", spec.BusinessRules == nil},
		{"enhanced_specification.security_requirements", spec.SecurityRequirements == nil},
		{"feature_map.features", impl.Features == nil},
		{"feature_map.ui_components", impl.UIComponents == nil},
		{"feature_map.api_endpoints", impl.APIEndpoints == nil},
		{"feature_map.data_flow", impl.DataFlow == nil},
		{"feature_map.business_logic", impl.BusinessLogic == nil},
		{"feature_map.security_features", impl.SecurityFeatures == nil},
	}
	for _, c := range containers {
		if c.absent {
			return &schema.InvalidInputError{Field: c.field, Reason: "required container field is absent"}
		}
	}
	return nil
}

func (c *Comparator) compareCoreFeatures(report *schema.ComparisonReport, spec []schema.SpecFeature, impl []schema.ImplFeature) {
	specNames := make([]string, len(spec))
	for i, f := range spec {
		specNames[i] = f.Name
	}
	implNames := make([]string, len(impl))
	for j, f := range impl {
		implNames[j] = f.Name
	}
	res := match.Match(specNames, implNames)

	for _, i := range res.UnmatchedSpec {
		f := spec[i]
		report.MissingFeatures = append(report.MissingFeatures, missingFinding(
			schema.TagCoreFeature, f.Name, "", f.Description, f.Priority))
	}
	for _, p := range res.Pairs {
		sf, im := spec[p.Spec], impl[p.Impl]
		if sf.Configurable != nil && im.Configurable != nil && *sf.Configurable != *im.Configurable {
			report.Deviations = append(report.Deviations, schema.Deviation{
				Type:        schema.TypeConfigurationDeviation,
				Name:        sf.Name,
				Expected:    configLabel(*sf.Configurable),
				Actual:      configLabel(*im.Configurable),
				Severity:    c.pol.DeviationSeverities[schema.TypeConfigurationDeviation],
				Description: "Feature configurability differs from specification",
			})
		}
		if sf.ImplementationApproach != "" && im.ImplementationType != "" &&
			match.Normalize(sf.ImplementationApproach) != match.Normalize(im.ImplementationType) {
			report.Deviations = append(report.Deviations, schema.Deviation{
				Type:        schema.TypeImplementationDeviation,
				Name:        sf.Name,
				Expected:    sf.ImplementationApproach,
				Actual:      im.ImplementationType,
				Severity:    c.pol.DeviationSeverities[schema.TypeImplementationDeviation],
				Description: "Different implementation approach used",
			})
		}
	}
	for _, j := range res.UnmatchedImpl {
		f := impl[j]
		report.ExtraFeatures = append(report.ExtraFeatures, extraFinding(schema.TagCoreFeature, f.Name, f.Description))
	}
}

func (c *Comparator) compareUIComponents(report *schema.ComparisonReport, spec []schema.SpecUIComponent, impl []schema.ImplUIComponent) {
	specNames := make([]string, len(spec))
	for i, u := range spec {
		specNames[i] = u.Name
	}
	implNames := make([]string, len(impl))
	for j, u := range impl {
		implNames[j] = u.Name
	}
	res := match.Match(specNames, implNames)

	for _, i := range res.UnmatchedSpec {
		u := spec[i]
		report.MissingFeatures = append(report.MissingFeatures, missingFinding(
			schema.TagUIComponent, u.Name, "", u.Description, ""))
	}
	for _, p := range res.Pairs {
		su, iu := spec[p.Spec], impl[p.Impl]
		if su.Styling != "" && iu.Styling != "" &&
			match.Normalize(su.Styling) != match.Normalize(iu.Styling) {
			report.Deviations = append(report.Deviations, schema.Deviation{
				Type:        schema.TypeStylingDeviation,
				Name:        su.Name,
				Expected:    su.Styling,
				Actual:      iu.Styling,
				Severity:    c.pol.DeviationSeverities[schema.TypeStylingDeviation],
				Description: "Different styling approach used",
			})
		}
	}
	for _, j := range res.UnmatchedImpl {
		u := impl[j]
		report.ExtraFeatures = append(report.ExtraFeatures, extraFinding(schema.TagUIComponent, u.Name, ""))
	}
}

func (c *Comparator) compareAPIEndpoints(report *schema.ComparisonReport, spec []schema.SpecAPIEndpoint, impl []schema.ImplAPIEndpoint) {
	specNames := make([]string, len(spec))
	for i, e := range spec {
		specNames[i] = e.Path
	}
	implNames := make([]string, len(impl))
	for j, e := range impl {
		implNames[j] = e.Path
	}
	res := match.Match(specNames, implNames)

	for _, i := range res.UnmatchedSpec {
		e := spec[i]
		// A specified endpoint that does not exist breaks integrations, so
		// unprioritized endpoints default to high rather than medium.
		prio := "high"
		report.MissingFeatures = append(report.MissingFeatures, missingFinding(
			schema.TagAPIEndpoint, e.Path, e.Method, e.Description, prio))
	}
	for _, j := range res.UnmatchedImpl {
		e := impl[j]
		report.ExtraFeatures = append(report.ExtraFeatures, extraFinding(schema.TagAPIEndpoint, e.Path, ""))
	}
}

func (c *Comparator) compareDataFlows(report *schema.ComparisonReport, spec []schema.SpecDataFlow, impl []schema.ImplDataFlow) {
	specNames := make([]string, len(spec))
	for i, f := range spec {
		specNames[i] = f.Name
	}
	implNames := make([]string, len(impl))
	for j, f := range impl {
		implNames[j] = f.Name
	}
	res := match.Match(specNames, implNames)

	for _, i := range res.UnmatchedSpec {
		f := spec[i]
		report.MissingFeatures = append(report.MissingFeatures, missingFinding(
			schema.TagDataFlow, f.Name, "", f.Description, ""))
	}
	for _, j := range res.UnmatchedImpl {
		f := impl[j]
		report.ExtraFeatures = append(report.ExtraFeatures, extraFinding(schema.TagDataFlow, f.Name, ""))
	}
}

func (c *Comparator) compareRules(report *schema.ComparisonReport, tag string, spec []schema.SpecRule, impl []schema.ImplLogic) {
	specNames := make([]string, len(spec))
	for i, r := range spec {
		specNames[i] = r.Name
	}
	implNames := make([]string, len(impl))
	for j, l := range impl {
		implNames[j] = l.Name
	}
	res := match.Match(specNames, implNames)

	for _, i := range res.UnmatchedSpec {
		r := spec[i]
		report.MissingFeatures = append(report.MissingFeatures, missingFinding(
			tag, r.Name, "", r.Description, r.Priority))
	}
	for _, j := range res.UnmatchedImpl {
		l := impl[j]
		report.ExtraFeatures = append(report.ExtraFeatures, extraFinding(tag, l.Name, l.Description))
	}
}

// checkDataFlowDirections emits a high-severity mismatch for every matched
// data flow whose direction string differs. Direction strings are compared
// exactly; direction vocabularies are the collaborators' contract.
func (c *Comparator) checkDataFlowDirections(report *schema.ComparisonReport, spec []schema.SpecDataFlow, impl []schema.ImplDataFlow) {
	implByName := make(map[string]schema.ImplDataFlow, len(impl))
	for j := len(impl) - 1; j >= 0; j-- { // first occurrence wins
		implByName[match.Normalize(impl[j].Name)] = impl[j]
	}
	for _, sf := range spec {
		im, ok := implByName[match.Normalize(sf.Name)]
		if !ok {
			continue
		}
		if sf.Direction != im.Direction {
			report.LogicalMismatches = append(report.LogicalMismatches, schema.LogicalMismatch{
				Type:        schema.TypeDataFlowMismatch,
				Name:        sf.Name,
				Expected:    sf.Direction,
				Actual:      im.Direction,
				Severity:    schema.SeverityHigh,
				Description: "Data flow direction mismatch",
			})
		}
	}
}

// checkSecurityRequirements emits a critical mismatch for every spec
// security requirement with no name-equal security feature. Security gaps
// always outrank ordinary missing-feature findings.
func (c *Comparator) checkSecurityRequirements(report *schema.ComparisonReport, spec []schema.SpecRule, impl []schema.ImplLogic) {
	implNames := make(map[string]bool, len(impl))
	for _, l := range impl {
		implNames[match.Normalize(l.Name)] = true
	}
	for _, r := range spec {
		if implNames[match.Normalize(r.Name)] {
			continue
		}
		report.LogicalMismatches = append(report.LogicalMismatches, schema.LogicalMismatch{
			Type:        schema.TypeSecurityRequirementMissed,
			Name:        r.Name,
			Severity:    schema.SeverityCritical,
			Description: fmt.Sprintf("Security requirement %q is not implemented", r.Name),
		})
	}
}

func missingFinding(tag, name, method, description, priority string) schema.MissingFeature {
	if priority == "" {
		priority = "medium"
	}
	return schema.MissingFeature{
		Type:        tag,
		Name:        name,
		Method:      method,
		Description: description,
		Priority:    priority,
		Impact:      score.SeverityFromPriority(priority),
	}
}

func extraFinding(tag, name, description string) schema.ExtraFeature {
	return schema.ExtraFeature{
		Type:           tag,
		Name:           name,
		Description:    description,
		Impact:         schema.SeverityLow,
		Recommendation: extraRecommendation,
	}
}

func configLabel(configurable bool) string {
	if configurable {
		return "configurable"
	}
	return "hardcoded"
}

func specEntityCount(spec *schema.EnhancedSpecification) int {
	return len(spec.CoreFeatures) + len(spec.UIComponents) + len(spec.APIEndpoints) +
		len(spec.DataFlow) + len(spec.BusinessRules) + len(spec.SecurityRequirements)
}

func implEntityCount(impl *schema.FeatureMap) int {
	return len(impl.Features) + len(impl.UIComponents) + len(impl.APIEndpoints) +
		len(impl.DataFlow) + len(impl.BusinessLogic) + len(impl.SecurityFeatures)
}
