package logger

import (
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
)

// GetWorkflowInfo reads the execution identity off a workflow context; nil
// when called outside a workflow
func GetWorkflowInfo(ctx workflow.Context) *WorkflowInfo {
	info := workflow.GetInfo(ctx)
	if info == nil {
		return nil
	}

	workflowType := info.WorkflowType.Name
	if workflowType == "" {
		workflowType = "unknown"
	}

	return &WorkflowInfo{
		WorkflowType: workflowType,
		WorkflowID:   info.WorkflowExecution.ID,
		RunID:        info.WorkflowExecution.RunID,
		Namespace:    info.Namespace,
		TaskQueue:    info.TaskQueueName,
	}
}

// InfoWf logs an info message annotated with the workflow's identity
func InfoWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if info := GetWorkflowInfo(ctx); info != nil {
		InfoWorkflow(*info, msg, fields...)
		return
	}
	Info(msg, fields...)
}

// ErrorWf logs an error annotated with the workflow's identity
func ErrorWf(ctx workflow.Context, err error, fields ...zap.Field) {
	if info := GetWorkflowInfo(ctx); info != nil {
		ErrorWorkflow(*info, err, fields...)
		return
	}
	Error(err, fields...)
}

// WarnWf logs a warning annotated with the workflow's identity
func WarnWf(ctx workflow.Context, msg string, fields ...zap.Field) {
	if info := GetWorkflowInfo(ctx); info != nil {
		WarnWorkflow(*info, msg, fields...)
		return
	}
	Warn(msg, fields...)
}
