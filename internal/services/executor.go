package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/juju/clock"

	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/pkg/pb"
)

// PipelineSource returns pipeline definitions by id.
type PipelineSource interface {
	Get(ctx context.Context, id string) (*models.PipelineDefinition, error)
}

var (
	errInvalidParams = errors.New("invalid parameters")
	errEmptyOutput   = errors.New("worker returned no image")
)

var filterTypes = map[string]bool{
	"blur":       true,
	"gaussian":   true,
	"sharpen":    true,
	"brightness": true,
	"contrast":   true,
	"saturation": true,
}

const (
	defaultImageFormat         = "jpeg"
	defaultConfidenceThreshold = 0.5
	defaultNMSThreshold        = 0.45
	defaultFilterIntensity     = 1.0
	maxFilterIntensity         = 5.0
)

type ExecutorInput struct {
	PipelineID string
	Data       []byte
	Width      int32
	Height     int32
	Overrides  map[models.ComponentType]map[string]string
}

type StepResult struct {
	ComponentID string
	Type        models.ComponentType
	Duration    time.Duration
	Err         error
}

type ExecutionResult struct {
	Data       []byte
	Width      int32
	Height     int32
	Detections []models.Detection
	Steps      []StepResult

	// Passthrough is set when no worker was involved.
	Passthrough bool
}

// Failed reports whether the pipeline had steps and none of them succeeded.
func (r ExecutionResult) Failed() bool {
	if len(r.Steps) == 0 {
		return false
	}
	for _, s := range r.Steps {
		if s.Err == nil {
			return false
		}
	}
	return true
}

// FirstError returns the first step error, if any.
func (r ExecutionResult) FirstError() error {
	for _, s := range r.Steps {
		if s.Err != nil {
			return s.Err
		}
	}
	return nil
}

// Executor runs a frame through the components of its pipeline.
type Executor struct {
	catalog PipelineSource
	workers Workers
	clock   clock.Clock
	logger  *slog.Logger
}

func NewExecutor(catalog PipelineSource, workers Workers, clk clock.Clock, logger *slog.Logger) *Executor {
	if clk == nil {
		clk = clock.WallClock
	}
	return &Executor{catalog: catalog, workers: workers, clock: clk, logger: logger}
}

func (e *Executor) Execute(ctx context.Context, in ExecutorInput) ExecutionResult {
	res := ExecutionResult{
		Data:       in.Data,
		Width:      in.Width,
		Height:     in.Height,
		Detections: []models.Detection{},
	}

	if models.IsPassthrough(in.PipelineID) {
		res.Passthrough = true
		return res
	}

	def, err := e.catalog.Get(ctx, in.PipelineID)
	if err != nil || def == nil {
		e.logger.Warn("pipeline definition unavailable, passing frame through",
			"pipeline_id", in.PipelineID, "error", err)
		res.Passthrough = true
		return res
	}

	for _, c := range e.order(def) {
		params := mergeParams(c.Parameters, in.Overrides[c.Type])

		start := e.clock.Now()
		var stepErr error
		switch c.Type {
		case models.ComponentResize:
			stepErr = e.resize(ctx, params, &res)
		case models.ComponentDetection:
			stepErr = e.detect(ctx, params, &res)
		case models.ComponentFilter:
			stepErr = e.filter(ctx, params, &res)
		}

		step := StepResult{ComponentID: c.ID, Type: c.Type, Duration: e.clock.Now().Sub(start), Err: stepErr}
		res.Steps = append(res.Steps, step)
		if stepErr != nil {
			e.logStepError(in.PipelineID, step)
		}
	}
	return res
}

func (e *Executor) logStepError(pipelineID string, step StepResult) {
	attrs := []any{
		"pipeline_id", pipelineID,
		"component_id", step.ComponentID,
		"component_type", step.Type,
		"error", step.Err,
	}
	if errors.Is(step.Err, errInvalidParams) {
		e.logger.Warn("pipeline step skipped", attrs...)
		return
	}
	kind := ClassifyWorkerError(step.Err)
	attrs = append(attrs, "kind", kind.String())
	if kind == WorkerErrorPermanent {
		e.logger.Error("pipeline step failed", attrs...)
		return
	}
	e.logger.Warn("pipeline step failed", attrs...)
}

// order sorts the known components of def by dependency, breaking ties by
// component priority and then by declaration order.
func (e *Executor) order(def *models.PipelineDefinition) []models.Component {
	var comps []models.Component
	index := make(map[string]int)
	for _, c := range def.Components {
		if !c.Type.Known() {
			e.logger.Warn("unknown component type ignored",
				"pipeline_id", def.ID, "component_id", c.ID, "component_type", c.Type)
			continue
		}
		if c.ID != "" {
			index[c.ID] = len(comps)
		}
		comps = append(comps, c)
	}

	indegree := make([]int, len(comps))
	dependents := make([][]int, len(comps))
	for i, c := range comps {
		for _, dep := range c.Dependencies {
			j, ok := index[dep]
			if !ok || j == i {
				continue
			}
			indegree[i]++
			dependents[j] = append(dependents[j], i)
		}
	}

	less := func(a, b int) bool {
		pa, pz := comps[a].Type.Priority(), comps[b].Type.Priority()
		if pa != pz {
			return pa < pz
		}
		return a < b
	}

	var ready []int
	for i := range comps {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	out := make([]models.Component, 0, len(comps))
	placed := make([]bool, len(comps))
	for len(ready) > 0 {
		sort.Slice(ready, func(x, y int) bool { return less(ready[x], ready[y]) })
		i := ready[0]
		ready = ready[1:]
		out = append(out, comps[i])
		placed[i] = true
		for _, d := range dependents[i] {
			indegree[d]--
			if indegree[d] == 0 {
				ready = append(ready, d)
			}
		}
	}

	if len(out) < len(comps) {
		var rest []int
		for i := range comps {
			if !placed[i] {
				rest = append(rest, i)
			}
		}
		sort.Slice(rest, func(x, y int) bool { return less(rest[x], rest[y]) })
		e.logger.Warn("pipeline dependencies contain a cycle, falling back to priority order",
			"pipeline_id", def.ID, "components", len(rest))
		for _, i := range rest {
			out = append(out, comps[i])
		}
	}
	return out
}

func (e *Executor) resize(ctx context.Context, params map[string]any, res *ExecutionResult) error {
	width, wok := paramInt(params, "width")
	height, hok := paramInt(params, "height")
	if !wok || !hok || width <= 0 || height <= 0 {
		return fmt.Errorf("resize: %w: width and height must be positive", errInvalidParams)
	}
	keepAspect, ok := paramBool(params, "maintain_aspect_ratio")
	if !ok {
		keepAspect = true
	}
	quality := pb.ResizeRequest_GOOD
	if q, ok := pb.ResizeRequest_Quality_value[strings.ToUpper(paramString(params, "quality"))]; ok {
		quality = pb.ResizeRequest_Quality(q)
	}

	resp, err := e.workers.ResizeImage(ctx, &pb.ResizeRequest{
		Input:               res.image(),
		TargetWidth:         int32(width),
		TargetHeight:        int32(height),
		MaintainAspectRatio: keepAspect,
		Quality:             quality,
		Interpolation:       interpolation(res.Width, res.Height, int32(width), int32(height)),
	})
	if err != nil {
		return err
	}
	out, meta := resp.GetOutput(), resp.GetMetadata()
	if len(out.GetData()) == 0 {
		return fmt.Errorf("resize: %w", errEmptyOutput)
	}

	res.Data = out.GetData()
	switch {
	case meta.GetOutputWidth() > 0 && meta.GetOutputHeight() > 0:
		res.Width, res.Height = meta.GetOutputWidth(), meta.GetOutputHeight()
	case out.GetWidth() > 0 && out.GetHeight() > 0:
		res.Width, res.Height = out.GetWidth(), out.GetHeight()
	}
	return nil
}

// interpolation picks area sampling when shrinking and linear otherwise.
// It returns "" when the current size is unknown.
func interpolation(curW, curH, targetW, targetH int32) string {
	if curW <= 0 || curH <= 0 {
		return ""
	}
	if int64(targetW)*int64(targetH) < int64(curW)*int64(curH) {
		return "area"
	}
	return "linear"
}

func (e *Executor) detect(ctx context.Context, params map[string]any, res *ExecutionResult) error {
	confidence, ok := paramFloat(params, "confidence_threshold")
	if !ok {
		confidence = defaultConfidenceThreshold
	}
	nms, ok := paramFloat(params, "nms_threshold")
	if !ok {
		nms = defaultNMSThreshold
	}
	drawBoxes, _ := paramBool(params, "draw_boxes")

	resp, err := e.workers.DetectObjects(ctx, &pb.DetectRequest{
		Input:               res.image(),
		ModelName:           paramString(params, "model_name"),
		ConfidenceThreshold: float32(clamp(confidence, 0, 1)),
		NmsThreshold:        float32(clamp(nms, 0, 1)),
		DrawBoxes:           drawBoxes,
	})
	if err != nil {
		return err
	}

	res.Detections = append(res.Detections, models.DetectionsFromPB(resp.GetDetections())...)
	if drawBoxes && len(resp.GetOutput().GetData()) > 0 {
		res.Data = resp.GetOutput().GetData()
	}
	return nil
}

func (e *Executor) filter(ctx context.Context, params map[string]any, res *ExecutionResult) error {
	filterType := strings.ToLower(paramString(params, "filter_type"))
	if !filterTypes[filterType] {
		return fmt.Errorf("filter: %w: unsupported filter_type %q", errInvalidParams, filterType)
	}
	intensity, ok := paramFloat(params, "intensity")
	if !ok {
		intensity = defaultFilterIntensity
	}

	wire := make(map[string]string, len(params))
	for k, v := range params {
		if k == "filter_type" {
			continue
		}
		wire[k] = formatParam(v)
	}
	wire["intensity"] = strconv.FormatFloat(clamp(intensity, 0, maxFilterIntensity), 'f', -1, 64)

	resp, err := e.workers.ApplyFilter(ctx, &pb.FilterRequest{
		Input:      res.image(),
		FilterType: filterType,
		Parameters: wire,
	})
	if err != nil {
		return err
	}
	if len(resp.GetOutput().GetData()) == 0 {
		return fmt.Errorf("filter: %w", errEmptyOutput)
	}
	res.Data = resp.GetOutput().GetData()
	return nil
}

func (r ExecutionResult) image() *pb.ImageData {
	return &pb.ImageData{Data: r.Data, Format: defaultImageFormat, Width: r.Width, Height: r.Height}
}

// mergeParams layers string overrides from the frame over the catalog
// parameters without touching the cached definition.
func mergeParams(base map[string]any, overrides map[string]string) map[string]any {
	out := make(map[string]any, len(base)+len(overrides))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func paramString(params map[string]any, key string) string {
	v, ok := params[key]
	if !ok || v == nil {
		return ""
	}
	return strings.TrimSpace(formatParam(v))
}

func paramFloat(params map[string]any, key string) (float64, bool) {
	switch v := params[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func paramInt(params map[string]any, key string) (int, bool) {
	f, ok := paramFloat(params, key)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

func paramBool(params map[string]any, key string) (bool, bool) {
	switch v := params[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return b, err == nil
	case float64:
		return v != 0, true
	}
	return false, false
}

func formatParam(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
