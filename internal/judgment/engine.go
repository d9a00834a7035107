// Package judgment turns detections into OK/NG decisions against stored
// inspection criteria.
package judgment

import (
	"strconv"
	"strings"

	"inspection-hub/go-backend/internal/models"
)

// Evaluate is the judgment engine. It is a pure function of its inputs and
// never fails: a criterion without a usable spec falls back to "OK iff
// nothing was detected".
func Evaluate(detections []models.Detection, c *models.Criterion) (models.Judgment, map[string]string) {
	n := len(detections)
	metrics := map[string]string{"detected": strconv.Itoa(n)}

	var spec models.CriterionSpec
	if c != nil {
		spec = c.Spec
	}

	var ok bool
	switch s := spec.(type) {
	case models.BinarySpec:
		if s.ExpectedValue {
			ok = n == 0
		} else {
			ok = n > 0
		}

	case models.ThresholdSpec:
		op := effectiveOperator(s.Operator)
		metrics["threshold"] = formatNumber(s.Threshold)
		metrics["operator"] = string(op)
		ok = compare(float64(n), s.Threshold, op)

	case models.NumericalSpec:
		metrics["min"] = formatBound(s.Min)
		metrics["max"] = formatBound(s.Max)
		ok = (s.Min == nil || float64(n) >= *s.Min) && (s.Max == nil || float64(n) <= *s.Max)

	case models.CategoricalSpec:
		metrics["allowed"] = strings.Join(s.Allowed, ",")
		ok = true
		for _, d := range detections {
			if !s.Allows(d.ClassName) {
				ok = false
				break
			}
		}

	default:
		ok = n == 0
	}

	if ok {
		return models.JudgmentOK, metrics
	}
	return models.JudgmentNG, metrics
}

func effectiveOperator(op models.Operator) models.Operator {
	switch op {
	case models.OpLT, models.OpLE, models.OpGT, models.OpGE, models.OpEQ, models.OpNE:
		return op
	}
	return models.OpLE
}

func compare(n, threshold float64, op models.Operator) bool {
	switch op {
	case models.OpLT:
		return n < threshold
	case models.OpGT:
		return n > threshold
	case models.OpGE:
		return n >= threshold
	case models.OpEQ:
		return n == threshold
	case models.OpNE:
		return n != threshold
	default:
		return n <= threshold
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatBound(f *float64) string {
	if f == nil {
		return "none"
	}
	return formatNumber(*f)
}
