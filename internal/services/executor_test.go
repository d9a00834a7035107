package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"inspection-hub/go-backend/internal/models"
	"inspection-hub/go-backend/internal/services"
	"inspection-hub/go-backend/internal/testutil"
	"inspection-hub/go-backend/pkg/pb"
)

type staticCatalog map[string]*models.PipelineDefinition

func (c staticCatalog) Get(_ context.Context, id string) (*models.PipelineDefinition, error) {
	def, ok := c[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return def, nil
}

func newExecutor(t *testing.T, catalog staticCatalog) (*services.Executor, *testutil.FakeWorkers) {
	t.Helper()
	workers := testutil.NewFakeWorkers(t)
	clk := testclock.NewClock(time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC))
	return services.NewExecutor(catalog, newPool(t, workers), clk, testutil.Logger()), workers
}

func resizeStep(id string, deps ...string) models.Component {
	return models.Component{
		ID:           id,
		Type:         models.ComponentResize,
		Parameters:   map[string]any{"width": float64(320), "height": float64(240)},
		Dependencies: deps,
	}
}

func detectStep(id string, deps ...string) models.Component {
	return models.Component{
		ID:           id,
		Type:         models.ComponentDetection,
		Parameters:   map[string]any{"model_name": "yolo", "confidence_threshold": 0.4},
		Dependencies: deps,
	}
}

func filterStep(id, filterType string, deps ...string) models.Component {
	return models.Component{
		ID:           id,
		Type:         models.ComponentFilter,
		Parameters:   map[string]any{"filter_type": filterType, "intensity": 2.0},
		Dependencies: deps,
	}
}

func TestExecutePassthrough(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{})

	for _, id := range []string{"", models.PassthroughPipeline, "unknown-pipeline"} {
		res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: id, Data: []byte("P1")})
		assert.True(t, res.Passthrough, id)
		assert.Equal(t, []byte("P1"), res.Data, id)
		assert.Empty(t, res.Detections, id)
		assert.NotNil(t, res.Detections, id)
	}
	assert.Zero(t, workers.TotalCalls())
}

func TestExecuteOrdersByPriorityWithoutDependencies(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			filterStep("f", "blur"),
			detectStep("d"),
			resizeStep("r"),
		}},
	})
	workers.SetDetections(&pb.Detection{ClassName: "bolt", Confidence: 0.8})

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P"), Width: 640, Height: 480})

	assert.Equal(t, []byte("P|resize|blur"), res.Data)
	require.Len(t, res.Steps, 3)
	assert.Equal(t, []models.ComponentType{models.ComponentResize, models.ComponentDetection, models.ComponentFilter},
		[]models.ComponentType{res.Steps[0].Type, res.Steps[1].Type, res.Steps[2].Type})
	require.Len(t, res.Detections, 1)
	assert.Equal(t, "bolt", res.Detections[0].ClassName)
	assert.EqualValues(t, 320, res.Width)

	// Detection sees the resized image.
	reqs := workers.DetectRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, []byte("P|resize"), reqs[0].GetInput().GetData())
	assert.InDelta(t, 0.4, reqs[0].ConfidenceThreshold, 1e-6)
}

func TestExecuteHonoursDependencies(t *testing.T) {
	exec, _ := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			resizeStep("r", "sharp"),
			filterStep("sharp", "sharpen"),
			filterStep("bright", "brightness", "r"),
		}},
	})

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.Equal(t, []byte("P|sharpen|resize|brightness"), res.Data)
}

func TestExecuteCycleFallsBackToPriority(t *testing.T) {
	exec, _ := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			filterStep("f", "blur", "r"),
			resizeStep("r", "f"),
		}},
	})

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.Equal(t, []byte("P|resize|blur"), res.Data)
}

func TestExecuteIgnoresUnknownComponents(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			{ID: "x", Type: "ocr"},
			filterStep("f", "blur", "x"),
		}},
	})

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.Equal(t, []byte("P|blur"), res.Data)
	assert.Len(t, res.Steps, 1)
	assert.EqualValues(t, 1, workers.TotalCalls())
}

func TestExecuteStepErrorDoesNotAbort(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{resizeStep("r"), filterStep("f", "blur")}},
	})
	workers.Fail("resize", status.Error(codes.Internal, "decoder crashed"))

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.Equal(t, []byte("P|blur"), res.Data)
	require.Len(t, res.Steps, 2)
	assert.Error(t, res.Steps[0].Err)
	assert.NoError(t, res.Steps[1].Err)
	assert.False(t, res.Failed())
}

func TestExecuteAllStepsFailed(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{resizeStep("r"), detectStep("d")}},
	})
	workers.Fail("resize", status.Error(codes.Unavailable, "down"))
	workers.Fail("detection", status.Error(codes.Unavailable, "down"))

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.True(t, res.Failed())
	assert.Error(t, res.FirstError())
	assert.Equal(t, []byte("P"), res.Data)
	assert.Empty(t, res.Detections)
}

func TestExecuteInvalidParametersSkipStep(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			{ID: "r", Type: models.ComponentResize, Parameters: map[string]any{"width": -1, "height": 10}},
			filterStep("f", "posterize"),
		}},
	})

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.True(t, res.Failed())
	assert.Zero(t, workers.TotalCalls())
}

func TestExecuteDrawBoxes(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			{ID: "d", Type: models.ComponentDetection, Parameters: map[string]any{"draw_boxes": true}},
		}},
		"PL-plain": {ID: "PL-plain", Components: []models.Component{detectStep("d")}},
	})
	workers.SetAnnotated([]byte("boxed"))

	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	assert.Equal(t, []byte("boxed"), res.Data)

	res = exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL-plain", Data: []byte("P")})
	assert.Equal(t, []byte("P"), res.Data)
}

func TestExecuteFrameOverrides(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{detectStep("d"), filterStep("f", "blur")}},
	})

	params := models.ParseFrameParams(map[string]string{
		"ai_detection.confidence_threshold": "0.9",
		"filter.filter_type":                "contrast",
		"filter.intensity":                  "12",
	})
	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P"), Overrides: params.Overrides})
	assert.Equal(t, []byte("P|contrast"), res.Data)

	detect := workers.DetectRequests()
	require.Len(t, detect, 1)
	assert.InDelta(t, 0.9, detect[0].ConfidenceThreshold, 1e-6)

	filter := workers.FilterRequests()
	require.Len(t, filter, 1)
	assert.Equal(t, "5", filter[0].Parameters["intensity"])
}

func TestExecuteResizeInterpolation(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			resizeStep("down"),
			{ID: "up", Type: models.ComponentResize, Parameters: map[string]any{"width": "1280", "height": "960"}, Dependencies: []string{"down"}},
		}},
	})

	exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P"), Width: 640, Height: 480})

	reqs := workers.ResizeRequests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "area", reqs[0].Interpolation)
	assert.Equal(t, "linear", reqs[1].Interpolation)
	assert.EqualValues(t, 320, reqs[1].GetInput().GetWidth())
	assert.Equal(t, pb.ResizeRequest_GOOD, reqs[0].GetQuality())
	assert.True(t, reqs[0].MaintainAspectRatio)
}

func TestExecuteResizeQuality(t *testing.T) {
	exec, workers := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{
			{ID: "best", Type: models.ComponentResize, Parameters: map[string]any{"width": 320, "height": 240, "quality": "best"}},
			{ID: "odd", Type: models.ComponentResize, Parameters: map[string]any{"width": 160, "height": 120, "quality": "ultra"}, Dependencies: []string{"best"}},
		}},
	})

	exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})

	reqs := workers.ResizeRequests()
	require.Len(t, reqs, 2)
	assert.Equal(t, pb.ResizeRequest_BEST, reqs[0].GetQuality())
	assert.Equal(t, pb.ResizeRequest_GOOD, reqs[1].GetQuality())
}

func TestExecuteStepDurationsUseClock(t *testing.T) {
	exec, _ := newExecutor(t, staticCatalog{
		"PL": {ID: "PL", Components: []models.Component{resizeStep("r"), detectStep("d")}},
	})

	// The test clock never advances, so every step takes no time.
	res := exec.Execute(context.Background(), services.ExecutorInput{PipelineID: "PL", Data: []byte("P")})
	require.Len(t, res.Steps, 2)
	for _, step := range res.Steps {
		assert.Zero(t, step.Duration, step.ComponentID)
	}
}
