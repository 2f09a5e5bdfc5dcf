// Package input loads and validates the four external JSON inputs. The two
// required inputs (enhanced specification and feature map) are validated
// against embedded JSON Schemas before decoding: unknown fields and missing
// required containers are rejected at the boundary with
// *schema.InvalidInputError instead of silently defaulting inside the
// engine. The two optional evidence inputs get lighter field-level checks.
package input

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xeipuuv/gojsonschema"

	"github.com/dshills/specfix/internal/schema"
)

// Compiled once at package init; gojsonschema loaders and compiled schemas
// are read-only afterwards, so concurrent loads are safe.
var (
	specSchema       = mustCompile(specSchemaJSON)
	featureMapSchema = mustCompile(featureMapSchemaJSON)
)

func mustCompile(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("input: invalid embedded schema: %v", err))
	}
	return s
}

// validate runs data against a compiled schema and converts the first
// violation into an InvalidInputError carrying the offending field path.
func validate(s *gojsonschema.Schema, data []byte, root string) error {
	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &schema.InvalidInputError{Field: root, Reason: err.Error()}
	}
	if result.Valid() {
		return nil
	}
	first := result.Errors()[0]
	field := root
	if first.Field() != "(root)" {
		field = root + "." + first.Field()
	}
	return &schema.InvalidInputError{Field: field, Reason: first.Description()}
}

// LoadSpecification reads and validates an enhanced specification file.
func LoadSpecification(path string) (*schema.EnhancedSpecification, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read specification: %w", err)
	}
	return ParseSpecification(data)
}

// ParseSpecification validates and decodes enhanced specification JSON.
func ParseSpecification(data []byte) (*schema.EnhancedSpecification, error) {
	if err := validate(specSchema, data, "enhanced_specification"); err != nil {
		return nil, err
	}
	var spec schema.EnhancedSpecification
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, &schema.InvalidInputError{Field: "enhanced_specification", Reason: err.Error()}
	}
	return &spec, nil
}

// LoadFeatureMap reads and validates a feature map file.
func LoadFeatureMap(path string) (*schema.FeatureMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read feature map: %w", err)
	}
	return ParseFeatureMap(data)
}

// ParseFeatureMap validates and decodes feature map JSON.
func ParseFeatureMap(data []byte) (*schema.FeatureMap, error) {
	if err := validate(featureMapSchema, data, "feature_map"); err != nil {
		return nil, err
	}
	var fm schema.FeatureMap
	if err := json.Unmarshal(data, &fm); err != nil {
		return nil, &schema.InvalidInputError{Field: "feature_map", Reason: err.Error()}
	}
	return &fm, nil
}

// LoadRuntimeLog reads and decodes an optional runtime log file.
func LoadRuntimeLog(path string) (*schema.RuntimeLog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read runtime log: %w", err)
	}
	var log schema.RuntimeLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, &schema.InvalidInputError{Field: "runtime_log", Reason: err.Error()}
	}
	if errs := ValidateRuntimeLog(&log); len(errs) > 0 {
		return nil, &schema.InvalidInputError{Field: "runtime_log", Reason: errs[0]}
	}
	return &log, nil
}

// LoadUIFlowTrace reads and decodes an optional UI flow trace file.
func LoadUIFlowTrace(path string) (*schema.UIFlowTrace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input: read ui flow trace: %w", err)
	}
	var trace schema.UIFlowTrace
	if err := json.Unmarshal(data, &trace); err != nil {
		return nil, &schema.InvalidInputError{Field: "ui_flow_trace", Reason: err.Error()}
	}
	if errs := ValidateUIFlowTrace(&trace); len(errs) > 0 {
		return nil, &schema.InvalidInputError{Field: "ui_flow_trace", Reason: errs[0]}
	}
	return &trace, nil
}

// ValidateRuntimeLog returns field-level error messages for a runtime log.
func ValidateRuntimeLog(log *schema.RuntimeLog) []string {
	var errs []string
	for i, e := range log.Errors {
		if e.Message == "" {
			errs = append(errs, fmt.Sprintf("errors[%d].message is required", i))
		}
		switch e.Level {
		case "error", "warning":
			// valid
		default:
			errs = append(errs, fmt.Sprintf("errors[%d].level %q is not valid", i, e.Level))
		}
	}
	return errs
}

// ValidateUIFlowTrace returns field-level error messages for a UI flow trace.
func ValidateUIFlowTrace(trace *schema.UIFlowTrace) []string {
	var errs []string
	for i, issue := range trace.UIIssues {
		if issue.Issue == "" {
			errs = append(errs, fmt.Sprintf("ui_issues[%d].issue is required", i))
		}
		switch issue.Severity {
		case "critical", "major", "minor":
			// valid
		default:
			errs = append(errs, fmt.Sprintf("ui_issues[%d].severity %q is not valid", i, issue.Severity))
		}
	}
	return errs
}
