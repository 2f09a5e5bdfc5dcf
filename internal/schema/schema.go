// Package schema defines all canonical data types for the specfix input and
// output formats: the two structured inputs (enhanced specification and
// feature map), the optional evidence inputs (runtime log and UI flow trace),
// the comparison report, and the bug/fix/run-summary artifacts.
package schema

// Severity classifies a comparison finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// BugSeverity classifies a synthesized bug. Bugs use a different scale than
// findings because runtime and UI evidence arrives pre-labelled on this scale.
type BugSeverity string

const (
	BugCritical BugSeverity = "critical"
	BugMajor    BugSeverity = "major"
	BugMinor    BugSeverity = "minor"
	BugInfo     BugSeverity = "info"
)

// BugCategory identifies the origin and nature of a bug.
type BugCategory string

const (
	CategoryMissingImplementation BugCategory = "Missing Implementation"
	CategoryImplementationGap     BugCategory = "Implementation Gap"
	CategoryCodeQuality           BugCategory = "Code Quality"
	CategoryRuntimeError          BugCategory = "Runtime Error"
	CategoryPerformance           BugCategory = "Performance"
	CategoryUserInterface         BugCategory = "User Interface"
	CategoryAccessibility         BugCategory = "Accessibility"
)

// FixStatus is the review state of a generated fix. Transitions out of
// pending are driven by an external reviewer and are terminal.
type FixStatus string

const (
	FixPending  FixStatus = "pending"
	FixApplied  FixStatus = "applied"
	FixRejected FixStatus = "rejected"
)

// Entity category tags used in comparison findings.
const (
	TagCoreFeature         = "core_feature"
	TagUIComponent         = "ui_component"
	TagAPIEndpoint         = "api_endpoint"
	TagDataFlow            = "data_flow"
	TagBusinessRule        = "business_rule"
	TagSecurityRequirement = "security_requirement"
)

// Deviation and mismatch type tags.
const (
	TypeConfigurationDeviation    = "configuration_deviation"
	TypeImplementationDeviation   = "implementation_deviation"
	TypeStylingDeviation          = "styling_deviation"
	TypeDataFlowMismatch          = "data_flow_mismatch"
	TypeSecurityRequirementMissed = "security_requirement_missing"
)

// FormatVersion is the persisted comparison-report format version.
const FormatVersion = "1.0"

// SpecFeature is one intended core feature in the enhanced specification.
type SpecFeature struct {
	Name                   string `json:"name"`
	Description            string `json:"description,omitempty"`
	Priority               string `json:"priority,omitempty"` // high | medium | low
	Configurable           *bool  `json:"configurable,omitempty"`
	ImplementationApproach string `json:"implementation_approach,omitempty"`
}

// SpecUIComponent is one intended UI component.
type SpecUIComponent struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Styling     string `json:"styling,omitempty"`
}

// SpecAPIEndpoint is one intended API endpoint. The path acts as the
// endpoint's matching name.
type SpecAPIEndpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method,omitempty"`
	Description string `json:"description,omitempty"`
}

// SpecDataFlow is one intended data flow.
type SpecDataFlow struct {
	Name        string `json:"name"`
	Direction   string `json:"direction,omitempty"`
	Description string `json:"description,omitempty"`
}

// SpecRule is an intended business rule or security requirement.
type SpecRule struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// EnhancedSpecification is the structured statement of intended behavior,
// produced by an external spec-refinement collaborator. Immutable once loaded.
type EnhancedSpecification struct {
	ProjectName          string            `json:"project_name"`
	CoreFeatures         []SpecFeature     `json:"core_features"`
	UIComponents         []SpecUIComponent `json:"ui_components"`
	APIEndpoints         []SpecAPIEndpoint `json:"api_endpoints"`
	DataFlow             []SpecDataFlow    `json:"data_flow"`
	BusinessRules        []SpecRule        `json:"business_rules"`
	SecurityRequirements []SpecRule        `json:"security_requirements"`
}

// ImplFeature is one implemented feature in the feature map. Field names
// follow the code-analysis collaborator's conventions (implementation_type
// rather than implementation_approach).
type ImplFeature struct {
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	Configurable       *bool  `json:"configurable,omitempty"`
	ImplementationType string `json:"implementation_type,omitempty"`
	FilePath           string `json:"file_path,omitempty"`
}

// ImplUIComponent is one implemented UI component.
type ImplUIComponent struct {
	Name     string `json:"name"`
	Styling  string `json:"styling,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

// ImplAPIEndpoint is one implemented API endpoint.
type ImplAPIEndpoint struct {
	Path     string `json:"path"`
	Method   string `json:"method,omitempty"`
	FilePath string `json:"file_path,omitempty"`
}

// ImplDataFlow is one implemented data flow.
type ImplDataFlow struct {
	Name      string `json:"name"`
	Direction string `json:"direction,omitempty"`
}

// ImplLogic is an implemented business-logic unit or security feature.
type ImplLogic struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FilePath    string `json:"file_path,omitempty"`
}

// SourceFile is a per-file source excerpt shipped alongside the feature map
// for pattern scanning. A file with empty content is skipped by the scanner.
type SourceFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// FeatureMap is the structured inventory of what the codebase actually
// implements, produced by an external code-analysis collaborator.
// Immutable once loaded.
type FeatureMap struct {
	ProjectName      string            `json:"project_name"`
	Features         []ImplFeature     `json:"features"`
	UIComponents     []ImplUIComponent `json:"ui_components"`
	APIEndpoints     []ImplAPIEndpoint `json:"api_endpoints"`
	DataFlow         []ImplDataFlow    `json:"data_flow"`
	BusinessLogic    []ImplLogic       `json:"business_logic"`
	SecurityFeatures []ImplLogic       `json:"security_features"`
	SourceFiles      []SourceFile      `json:"source_files,omitempty"`
}

// MissingFeature is a spec entity with no implementation match.
type MissingFeature struct {
	Type        string   `json:"type"` // entity category tag
	Name        string   `json:"name"`
	Method      string   `json:"method,omitempty"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	Impact      Severity `json:"impact"`
}

// Deviation is a matched entity whose attributes differ between spec and
// implementation.
type Deviation struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Expected    string   `json:"expected"`
	Actual      string   `json:"actual"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// LogicalMismatch is a cross-cutting inconsistency: a data-flow direction
// conflict or an unmet security requirement.
type LogicalMismatch struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Expected    string   `json:"expected,omitempty"`
	Actual      string   `json:"actual,omitempty"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
}

// ExtraFeature is an implementation entity with no spec match.
type ExtraFeature struct {
	Type           string   `json:"type"` // entity category tag
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Impact         Severity `json:"impact"`
	Recommendation string   `json:"recommendation"`
}

// Distribution counts findings by severity. Extra findings are excluded;
// they carry a fixed low impact and do not penalize the health score.
type Distribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Total returns the number of findings counted in the distribution.
func (d Distribution) Total() int {
	return d.Critical + d.High + d.Medium + d.Low
}

// Summary holds the computed counts, health score, status label, and
// recommendations for a comparison run.
type Summary struct {
	TotalIssues          int          `json:"total_issues"`
	MissingCount         int          `json:"missing_features_count"`
	DeviationsCount      int          `json:"deviations_count"`
	MismatchesCount      int          `json:"logical_mismatches_count"`
	ExtraCount           int          `json:"extra_features_count"`
	SeverityDistribution Distribution `json:"severity_distribution"`
	HealthScore          float64      `json:"health_score"`
	OverallStatus        string       `json:"overall_status"`
	Recommendations      []string     `json:"recommendations"`
}

// Metadata records run parameters for a comparison report.
type Metadata struct {
	ComparisonTimestamp string `json:"comparison_timestamp"` // RFC 3339, UTC
	SpecEntityCount     int    `json:"spec_entity_count"`
	ImplEntityCount     int    `json:"impl_entity_count"`
	FormatVersion       string `json:"format_version"`
}

// ComparisonReport is the complete result of one comparison run. It is
// created once per run and never partially mutated; rerun the comparison to
// regenerate it.
type ComparisonReport struct {
	MissingFeatures   []MissingFeature  `json:"missing_features"`
	Deviations        []Deviation       `json:"deviations"`
	LogicalMismatches []LogicalMismatch `json:"logical_mismatches"`
	ExtraFeatures     []ExtraFeature    `json:"extra_features"`
	Summary           Summary           `json:"summary"`
	Metadata          Metadata          `json:"metadata"`
}

// LogError is one error entry from a runtime log.
type LogError struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"` // error | warning
	Message   string `json:"message"`
}

// PerformanceData holds performance observations from a runtime log.
type PerformanceData struct {
	SlowQueries []string `json:"slow_queries"`
	MemoryLeaks []string `json:"memory_leaks"`
}

// RuntimeLog is the optional runtime evidence input.
type RuntimeLog struct {
	Errors      []LogError      `json:"errors"`
	Performance PerformanceData `json:"performance"`
}

// UserAction is one recorded user interaction from a UI flow trace.
type UserAction struct {
	Action    string  `json:"action"`
	Element   string  `json:"element"`
	Timestamp float64 `json:"timestamp"`
}

// UIIssue is one observed UI problem from a UI flow trace.
type UIIssue struct {
	Issue     string  `json:"issue"`
	Severity  string  `json:"severity"` // critical | major | minor
	Timestamp float64 `json:"timestamp"`
}

// UIFlowTrace is the optional UI evidence input, produced by an external
// screen-recording collaborator.
type UIFlowTrace struct {
	UserActions []UserAction `json:"user_actions"`
	UIIssues    []UIIssue    `json:"ui_issues"`
}

// Bug is a normalized, severity-tagged issue synthesized from exactly one
// upstream finding or evidence entry. Bugs are never merged or split.
type Bug struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Severity     BugSeverity `json:"severity"`
	FilePath     string      `json:"file_path,omitempty"`
	LineNumber   int         `json:"line_number,omitempty"`
	Category     BugCategory `json:"category"`
	OriginalCode string      `json:"original_code,omitempty"`
	ProposedFix  string      `json:"proposed_fix,omitempty"`
	Explanation  string      `json:"explanation,omitempty"`
	Confidence   float64     `json:"confidence"`
}

// Fix is a generated, reviewable source patch addressing one bug.
type Fix struct {
	BugID         string    `json:"bug_id"`
	FilePath      string    `json:"file_path"`
	StartLine     int       `json:"start_line"`
	EndLine       int       `json:"end_line"`
	OriginalLines []string  `json:"original_lines"`
	FixedLines    []string  `json:"fixed_lines"`
	LinesChanged  int       `json:"lines_changed"`
	UnifiedDiff   string    `json:"unified_diff"`
	Status        FixStatus `json:"status"`
}

// RunSummary is the write-once snapshot of one debug run: all bugs, all
// generated fixes, and severity totals.
type RunSummary struct {
	RunID          string              `json:"run_id"`
	Timestamp      string              `json:"timestamp"` // RFC 3339, UTC
	TotalBugs      int                 `json:"total_bugs"`
	TotalFixes     int                 `json:"total_fixes"`
	BugsBySeverity map[BugSeverity]int `json:"bugs_by_severity"`
	Bugs           []Bug               `json:"bugs"`
	Fixes          []Fix               `json:"fixes"`
}
