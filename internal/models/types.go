package models

import "strings"

// PassthroughPipeline is the sentinel pipeline id that skips every worker.
const PassthroughPipeline = "passthrough"

// IsPassthrough reports whether a pipeline id means "return the frame as is".
func IsPassthrough(pipelineID string) bool {
	return pipelineID == "" || pipelineID == PassthroughPipeline
}

type BoundingBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Detection is one object reported by the detection worker.
type Detection struct {
	ClassName  string      `json:"class_name"`
	Confidence float64     `json:"confidence"`
	BBox       BoundingBox `json:"bbox"`
}

// Normalize clamps confidence into [0,1] and orders the box corners.
func (d Detection) Normalize() Detection {
	if d.Confidence < 0 {
		d.Confidence = 0
	}
	if d.Confidence > 1 {
		d.Confidence = 1
	}
	if d.BBox.X1 > d.BBox.X2 {
		d.BBox.X1, d.BBox.X2 = d.BBox.X2, d.BBox.X1
	}
	if d.BBox.Y1 > d.BBox.Y2 {
		d.BBox.Y1, d.BBox.Y2 = d.BBox.Y2, d.BBox.Y1
	}
	return d
}

// Recognized processing_params keys.
const (
	ParamProductCode     = "product_code"
	ParamProcessCode     = "process_code"
	ParamExecutionID     = "execution_id"
	ParamItemExecutionID = "item_execution_id"
	ParamTargetItemID    = "target_item_id"
)

// FrameParams is the typed form of a frame's processing_params. It is parsed
// once at ingress and never re-read from the raw map downstream.
type FrameParams struct {
	ProductCode     string
	ProcessCode     string
	ExecutionID     string
	ItemExecutionID string
	TargetItemID    string

	// Overrides holds "<component_type>.<parameter>" keys grouped by component type.
	Overrides map[ComponentType]map[string]string
}

func ParseFrameParams(raw map[string]string) FrameParams {
	p := FrameParams{
		ProductCode:     strings.TrimSpace(raw[ParamProductCode]),
		ProcessCode:     strings.TrimSpace(raw[ParamProcessCode]),
		ExecutionID:     strings.TrimSpace(raw[ParamExecutionID]),
		ItemExecutionID: strings.TrimSpace(raw[ParamItemExecutionID]),
		TargetItemID:    strings.TrimSpace(raw[ParamTargetItemID]),
	}
	for key, value := range raw {
		typ, name, ok := strings.Cut(key, ".")
		if !ok || name == "" {
			continue
		}
		ct := ComponentType(typ)
		if !ct.Known() {
			continue
		}
		if p.Overrides == nil {
			p.Overrides = make(map[ComponentType]map[string]string)
		}
		if p.Overrides[ct] == nil {
			p.Overrides[ct] = make(map[string]string)
		}
		p.Overrides[ct][name] = value
	}
	return p
}

// CanResolveCriteria reports whether there is enough context to look up a criterion.
func (p FrameParams) CanResolveCriteria(pipelineID string) bool {
	if p.TargetItemID != "" {
		return true
	}
	return p.ProductCode != "" && p.ProcessCode != "" && pipelineID != ""
}

// Aggregatable reports whether judgments for this frame feed an item execution.
func (p FrameParams) Aggregatable() bool {
	return p.ExecutionID != "" && p.ItemExecutionID != ""
}

type ComponentType string

const (
	ComponentResize    ComponentType = "resize"
	ComponentDetection ComponentType = "ai_detection"
	ComponentFilter    ComponentType = "filter"
)

// Priority orders components that have no dependency between them.
func (t ComponentType) Priority() int {
	switch t {
	case ComponentResize:
		return 1
	case ComponentDetection:
		return 2
	case ComponentFilter:
		return 3
	default:
		return 999
	}
}

func (t ComponentType) Known() bool {
	switch t {
	case ComponentResize, ComponentDetection, ComponentFilter:
		return true
	}
	return false
}

type Component struct {
	ID           string         `json:"id"`
	Type         ComponentType  `json:"type"`
	Parameters   map[string]any `json:"parameters,omitempty"`
	Dependencies []string       `json:"dependencies,omitempty"`
}

// PipelineDefinition is served by the pipeline master.
type PipelineDefinition struct {
	ID         string      `json:"id"`
	Name       string      `json:"name,omitempty"`
	Components []Component `json:"components"`
}
