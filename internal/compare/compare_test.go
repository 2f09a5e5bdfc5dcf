package compare

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/specfix/internal/policy"
	"github.com/dshills/specfix/internal/schema"
)

func boolPtr(b bool) *bool { return &b }

// referenceSpec and referenceImpl reproduce the calibration dataset: 3
// missing features, 3 deviations, 2 logical mismatches, 1 extra feature.
func referenceSpec() *schema.EnhancedSpecification {
	return &schema.EnhancedSpecification{
		ProjectName: "TaskFlow",
		CoreFeatures: []schema.SpecFeature{
			{Name: "Export Reports", Description: "Export task reports", Priority: "high"},
			{Name: "Dark Mode", Priority: "medium", Configurable: boolPtr(true)},
			{Name: "Live Updates", Priority: "high", ImplementationApproach: "websocket streaming"},
		},
		UIComponents: []schema.SpecUIComponent{
			{Name: "Settings Panel", Description: "User preferences"},
			{Name: "Navbar", Styling: "tailwind"},
		},
		APIEndpoints: []schema.SpecAPIEndpoint{
			{Path: "/api/tasks", Method: "GET"},
		},
		DataFlow: []schema.SpecDataFlow{
			{Name: "User Analytics", Direction: "client-to-server"},
		},
		BusinessRules: []schema.SpecRule{
			{Name: "Task Ownership", Priority: "high"},
		},
		SecurityRequirements: []schema.SpecRule{
			{Name: "Two-Factor Authentication", Priority: "high"},
			{Name: "Password Hashing"},
		},
	}
}

func referenceImpl() *schema.FeatureMap {
	return &schema.FeatureMap{
		ProjectName: "TaskFlow",
		Features: []schema.ImplFeature{
			{Name: "Dark Mode", Configurable: boolPtr(false)},
			{Name: "Live Updates", ImplementationType: "polling"},
			{Name: "Beta Telemetry", Description: "Experimental telemetry"},
		},
		UIComponents: []schema.ImplUIComponent{
			{Name: "Navbar", Styling: "inline styles"},
		},
		APIEndpoints: []schema.ImplAPIEndpoint{
			{Path: "/api/tasks", Method: "GET"},
		},
		DataFlow: []schema.ImplDataFlow{
			{Name: "User Analytics", Direction: "server-to-client"},
		},
		BusinessLogic: []schema.ImplLogic{
			{Name: "Task Ownership"},
		},
		SecurityFeatures: []schema.ImplLogic{
			{Name: "Password Hashing"},
		},
	}
}

func pinnedComparator() *Comparator {
	c := New(policy.Default())
	c.Now = func() time.Time {
		return time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	}
	return c
}

func TestCompareReferenceDataset(t *testing.T) {
	report, err := pinnedComparator().Compare(referenceSpec(), referenceImpl())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	s := report.Summary
	if s.TotalIssues != 8 {
		t.Errorf("TotalIssues = %d, want 8", s.TotalIssues)
	}
	if s.MissingCount != 3 || s.DeviationsCount != 3 || s.MismatchesCount != 2 || s.ExtraCount != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/3/2/1",
			s.MissingCount, s.DeviationsCount, s.MismatchesCount, s.ExtraCount)
	}
	wantDist := schema.Distribution{Critical: 1, High: 3, Medium: 2, Low: 2}
	if s.SeverityDistribution != wantDist {
		t.Errorf("SeverityDistribution = %+v, want %+v", s.SeverityDistribution, wantDist)
	}
	if s.HealthScore != 33.3 {
		t.Errorf("HealthScore = %v, want 33.3", s.HealthScore)
	}
	if s.OverallStatus != "Critical Issues Found" {
		t.Errorf("OverallStatus = %q, want Critical Issues Found", s.OverallStatus)
	}

	if report.Metadata.SpecEntityCount != 10 {
		t.Errorf("SpecEntityCount = %d, want 10", report.Metadata.SpecEntityCount)
	}
	if report.Metadata.ImplEntityCount != 8 {
		t.Errorf("ImplEntityCount = %d, want 8", report.Metadata.ImplEntityCount)
	}
	if report.Metadata.ComparisonTimestamp != "2025-03-14T12:00:00Z" {
		t.Errorf("ComparisonTimestamp = %q", report.Metadata.ComparisonTimestamp)
	}
	if report.Metadata.FormatVersion != schema.FormatVersion {
		t.Errorf("FormatVersion = %q", report.Metadata.FormatVersion)
	}
}

func TestCompareFindingOrderAndContent(t *testing.T) {
	report, err := pinnedComparator().Compare(referenceSpec(), referenceImpl())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	wantMissing := []string{"Export Reports", "Settings Panel", "Two-Factor Authentication"}
	for i, name := range wantMissing {
		if report.MissingFeatures[i].Name != name {
			t.Errorf("MissingFeatures[%d].Name = %q, want %q", i, report.MissingFeatures[i].Name, name)
		}
	}
	if report.MissingFeatures[1].Priority != "medium" {
		t.Errorf("unprioritized missing feature priority = %q, want medium", report.MissingFeatures[1].Priority)
	}

	wantDeviations := []struct {
		typ      string
		severity schema.Severity
	}{
		{schema.TypeConfigurationDeviation, schema.SeverityMedium},
		{schema.TypeImplementationDeviation, schema.SeverityLow},
		{schema.TypeStylingDeviation, schema.SeverityLow},
	}
	for i, w := range wantDeviations {
		d := report.Deviations[i]
		if d.Type != w.typ || d.Severity != w.severity {
			t.Errorf("Deviations[%d] = %s/%s, want %s/%s", i, d.Type, d.Severity, w.typ, w.severity)
		}
	}
	if report.Deviations[0].Expected != "configurable" || report.Deviations[0].Actual != "hardcoded" {
		t.Errorf("configuration deviation labels = %q/%q", report.Deviations[0].Expected, report.Deviations[0].Actual)
	}

	if report.LogicalMismatches[0].Type != schema.TypeDataFlowMismatch ||
		report.LogicalMismatches[0].Severity != schema.SeverityHigh {
		t.Errorf("LogicalMismatches[0] = %+v, want high data flow mismatch", report.LogicalMismatches[0])
	}
	if report.LogicalMismatches[1].Type != schema.TypeSecurityRequirementMissed ||
		report.LogicalMismatches[1].Severity != schema.SeverityCritical {
		t.Errorf("LogicalMismatches[1] = %+v, want critical security requirement", report.LogicalMismatches[1])
	}

	if len(report.ExtraFeatures) != 1 || report.ExtraFeatures[0].Name != "Beta Telemetry" {
		t.Errorf("ExtraFeatures = %+v, want Beta Telemetry", report.ExtraFeatures)
	}
	if report.ExtraFeatures[0].Impact != schema.SeverityLow {
		t.Errorf("extra impact = %q, want low", report.ExtraFeatures[0].Impact)
	}
}

func TestCompareDeterministic(t *testing.T) {
	c := pinnedComparator()
	first, err := c.Compare(referenceSpec(), referenceImpl())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	second, err := c.Compare(referenceSpec(), referenceImpl())
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated comparison differs (-first +second):\n%s", diff)
	}
}

func TestComparePerfectMatch(t *testing.T) {
	spec := &schema.EnhancedSpecification{
		CoreFeatures:         []schema.SpecFeature{{Name: "Login"}},
		UIComponents:         []schema.SpecUIComponent{},
		APIEndpoints:         []schema.SpecAPIEndpoint{},
		DataFlow:             []schema.SpecDataFlow{},
		BusinessRules:        []schema.SpecRule{},
		SecurityRequirements: []schema.SpecRule{},
	}
	impl := &schema.FeatureMap{
		Features:         []schema.ImplFeature{{Name: "login"}},
		UIComponents:     []schema.ImplUIComponent{},
		APIEndpoints:     []schema.ImplAPIEndpoint{},
		DataFlow:         []schema.ImplDataFlow{},
		BusinessLogic:    []schema.ImplLogic{},
		SecurityFeatures: []schema.ImplLogic{},
	}
	report, err := pinnedComparator().Compare(spec, impl)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if report.Summary.TotalIssues != 0 {
		t.Errorf("TotalIssues = %d, want 0", report.Summary.TotalIssues)
	}
	if report.Summary.HealthScore != 100 {
		t.Errorf("HealthScore = %v, want 100", report.Summary.HealthScore)
	}
	if report.Summary.OverallStatus != "Good" {
		t.Errorf("OverallStatus = %q, want Good", report.Summary.OverallStatus)
	}
}

func TestCompareAbsentAttributesNeverMismatch(t *testing.T) {
	spec := referenceSpec()
	spec.CoreFeatures = []schema.SpecFeature{{Name: "Dark Mode"}} // no configurable, no approach
	spec.UIComponents = []schema.SpecUIComponent{}
	spec.DataFlow = []schema.SpecDataFlow{}
	spec.SecurityRequirements = []schema.SpecRule{}
	impl := referenceImpl()
	impl.Features = []schema.ImplFeature{{Name: "Dark Mode", Configurable: boolPtr(false), ImplementationType: "polling"}}
	impl.UIComponents = []schema.ImplUIComponent{}
	impl.DataFlow = []schema.ImplDataFlow{}

	report, err := pinnedComparator().Compare(spec, impl)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if len(report.Deviations) != 0 {
		t.Errorf("Deviations = %+v, want none for wildcard attributes", report.Deviations)
	}
}

func TestCompareNilInputs(t *testing.T) {
	c := pinnedComparator()
	var iie *schema.InvalidInputError

	_, err := c.Compare(nil, referenceImpl())
	if !errors.As(err, &iie) {
		t.Errorf("Compare(nil, impl) error = %v, want InvalidInputError", err)
	}
	_, err = c.Compare(referenceSpec(), nil)
	if !errors.As(err, &iie) {
		t.Errorf("Compare(spec, nil) error = %v, want InvalidInputError", err)
	}
}

func TestCompareMissingContainer(t *testing.T) {
	spec := referenceSpec()
	spec.BusinessRules = nil
	_, err := pinnedComparator().Compare(spec, referenceImpl())
	var iie *schema.InvalidInputError
	if !errors.As(err, &iie) {
		t.Fatalf("error = %v, want InvalidInputError", err)
	}
	if iie.Field != "enhanced_specification.business_rules" {
		t.Errorf("Field = %q, want enhanced_specification.business_rules", iie.Field)
	}
}
