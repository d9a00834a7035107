package config

import (
	"fmt"
	"strings"
)

// DeploymentHint selects the default service locations.
type DeploymentHint string

const (
	HintCluster DeploymentHint = "cluster"
	HintCompose DeploymentHint = "compose"
	HintDirect  DeploymentHint = "direct"
)

func ParseDeploymentHint(s string) (DeploymentHint, error) {
	switch h := DeploymentHint(strings.ToLower(strings.TrimSpace(s))); h {
	case HintCluster, HintCompose, HintDirect:
		return h, nil
	}
	return "", fmt.Errorf("config: unknown DEPLOYMENT_HINT %q", s)
}

// Endpoints are the locations of every service the hub talks to.
type Endpoints struct {
	Resize         string
	Detection      string
	Filter         string
	Evaluator      string
	PipelineMaster string
}

var endpointDefaults = map[DeploymentHint]Endpoints{
	HintCluster: {
		Resize:         "resize-service.default.svc.cluster.local:50061",
		Detection:      "detection-service.default.svc.cluster.local:50062",
		Filter:         "filter-service.default.svc.cluster.local:50063",
		Evaluator:      "evaluator-service.default.svc.cluster.local:50052",
		PipelineMaster: "http://master-service.default.svc.cluster.local:8000",
	},
	HintCompose: {
		Resize:         "resize-service:50061",
		Detection:      "detection-service:50062",
		Filter:         "filter-service:50063",
		Evaluator:      "evaluator-service:50052",
		PipelineMaster: "http://master-service:8000",
	},
	HintDirect: {
		Resize:         "127.0.0.1:50061",
		Detection:      "127.0.0.1:50062",
		Filter:         "127.0.0.1:50063",
		Evaluator:      "127.0.0.1:50052",
		PipelineMaster: "http://127.0.0.1:8000",
	},
}

// ResolveEndpoints picks the defaults for hint and applies per-endpoint overrides.
func ResolveEndpoints(hint DeploymentHint, lookup func(string) string) Endpoints {
	ep, ok := endpointDefaults[hint]
	if !ok {
		ep = endpointDefaults[HintDirect]
	}
	override := func(key string, dst *string) {
		if v := strings.TrimSpace(lookup(key)); v != "" {
			*dst = v
		}
	}
	override("RESIZE_ENDPOINT", &ep.Resize)
	override("DETECTION_ENDPOINT", &ep.Detection)
	override("FILTER_ENDPOINT", &ep.Filter)
	override("EVALUATOR_ENDPOINT", &ep.Evaluator)
	override("PIPELINE_MASTER_URL", &ep.PipelineMaster)
	ep.PipelineMaster = strings.TrimRight(ep.PipelineMaster, "/")
	return ep
}
