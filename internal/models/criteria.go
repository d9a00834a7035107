package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type JudgmentType string

const (
	JudgmentBinary      JudgmentType = "BINARY"
	JudgmentNumerical   JudgmentType = "NUMERICAL"
	JudgmentCategorical JudgmentType = "CATEGORICAL"
	JudgmentThreshold   JudgmentType = "THRESHOLD"
)

type Judgment string

const (
	JudgmentOK      Judgment = "OK"
	JudgmentNG      Judgment = "NG"
	JudgmentPending Judgment = "PENDING"
)

// Final reports whether the judgment settles an item execution.
func (j Judgment) Final() bool {
	return j == JudgmentOK || j == JudgmentNG
}

type Operator string

const (
	OpLT Operator = "LT"
	OpLE Operator = "LE"
	OpGT Operator = "GT"
	OpGE Operator = "GE"
	OpEQ Operator = "EQ"
	OpNE Operator = "NE"
)

var operatorAliases = map[string]Operator{
	"LT": OpLT, "<": OpLT,
	"LE": OpLE, "<=": OpLE,
	"GT": OpGT, ">": OpGT,
	"GE": OpGE, ">=": OpGE,
	"EQ": OpEQ, "==": OpEQ, "=": OpEQ,
	"NE": OpNE, "!=": OpNE,
}

// ParseOperator maps stored operator spellings to an Operator. Unknown
// spellings are returned as-is so the engine can apply its default.
func ParseOperator(s string) Operator {
	s = strings.ToUpper(strings.TrimSpace(s))
	if op, ok := operatorAliases[s]; ok {
		return op
	}
	return Operator(s)
}

// CriterionSpec is the typed rule body, one concrete type per judgment type.
type CriterionSpec interface {
	JudgmentType() JudgmentType
}

type BinarySpec struct {
	// ExpectedValue true means "no detections is OK".
	ExpectedValue bool
}

type ThresholdSpec struct {
	Threshold float64
	Operator  Operator
}

type NumericalSpec struct {
	Min *float64
	Max *float64
}

type CategoricalSpec struct {
	Allowed []string
}

func (BinarySpec) JudgmentType() JudgmentType      { return JudgmentBinary }
func (ThresholdSpec) JudgmentType() JudgmentType   { return JudgmentThreshold }
func (NumericalSpec) JudgmentType() JudgmentType   { return JudgmentNumerical }
func (CategoricalSpec) JudgmentType() JudgmentType { return JudgmentCategorical }

// Allows reports whether class is one of the allowed categories.
func (s CategoricalSpec) Allows(class string) bool {
	for _, a := range s.Allowed {
		if a == class {
			return true
		}
	}
	return false
}

// Criterion is a resolved inspection rule together with the item it belongs to.
type Criterion struct {
	ID         string
	ItemID     string
	PipelineID string
	Type       JudgmentType

	// Spec is nil when the stored spec does not match Type.
	Spec CriterionSpec
}

// ParseCriterionSpec decodes the loosely typed spec column into the variant
// selected by typ. It returns nil for unknown types and malformed shapes.
func ParseCriterionSpec(typ JudgmentType, raw []byte) CriterionSpec {
	var fields map[string]any
	if len(raw) == 0 || json.Unmarshal(raw, &fields) != nil || fields == nil {
		return nil
	}

	switch JudgmentType(strings.ToUpper(string(typ))) {
	case JudgmentBinary:
		v, ok := asBool(fields["expected_value"])
		if !ok {
			return nil
		}
		return BinarySpec{ExpectedValue: v}

	case JudgmentThreshold:
		t, ok := asFloat(fields["threshold"])
		if !ok {
			return nil
		}
		op, _ := fields["operator"].(string)
		return ThresholdSpec{Threshold: t, Operator: ParseOperator(op)}

	case JudgmentNumerical:
		var spec NumericalSpec
		if v, present := fields["min_value"]; present && v != nil {
			f, ok := asFloat(v)
			if !ok {
				return nil
			}
			spec.Min = &f
		}
		if v, present := fields["max_value"]; present && v != nil {
			f, ok := asFloat(v)
			if !ok {
				return nil
			}
			spec.Max = &f
		}
		return spec

	case JudgmentCategorical:
		list, ok := fields["allowed_categories"].([]any)
		if !ok {
			return nil
		}
		spec := CategoricalSpec{Allowed: make([]string, 0, len(list))}
		seen := make(map[string]bool, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil
			}
			if !seen[s] {
				seen[s] = true
				spec.Allowed = append(spec.Allowed, s)
			}
		}
		return spec
	}
	return nil
}

func asBool(v any) (bool, bool) {
	switch t := v.(type) {
	case bool:
		return t, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		return b, err == nil
	}
	return false, false
}

func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}
