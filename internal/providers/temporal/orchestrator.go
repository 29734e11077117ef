package temporal

import (
	"context"

	"go.temporal.io/sdk/client"
)

// TemporalOrchestrator is the slice of the Temporal client the API needs to
// start resolve sagas; narrowed so handlers can be tested with a mock
//
//go:generate mockgen -source=orchestrator.go -destination=../../mocks/temporal_orchestrator.go -package=mocks -mock_names=TemporalOrchestrator=MockTemporalOrchestrator
type TemporalOrchestrator interface {
	ExecuteWorkflow(ctx context.Context, options client.StartWorkflowOptions, workflow interface{}, args ...interface{}) (client.WorkflowRun, error)
}
