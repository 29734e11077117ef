package logger

import (
	"go.uber.org/zap"
)

// WorkflowInfo carries Temporal workflow identity for log correlation
type WorkflowInfo struct {
	WorkflowType string
	WorkflowID   string
	RunID        string
	Namespace    string
	TaskQueue    string
}

// Fields returns the zap fields describing this workflow execution
func (w WorkflowInfo) Fields() []zap.Field {
	return []zap.Field{
		zap.String("workflow_type", w.WorkflowType),
		zap.String("workflow_id", w.WorkflowID),
		zap.String("run_id", w.RunID),
		zap.String("namespace", w.Namespace),
		zap.String("task_queue", w.TaskQueue),
	}
}

// WithWorkflowInfo returns a logger annotated with workflow identity fields
func WithWorkflowInfo(info WorkflowInfo) *zap.Logger {
	return log.With(info.Fields()...)
}

// InfoWorkflow logs an info message with workflow identity fields
func InfoWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Info(msg, fields...)
}

// ErrorWorkflow logs an error message with workflow identity fields
func ErrorWorkflow(info WorkflowInfo, err error, fields ...zap.Field) {
	l := WithWorkflowInfo(info)
	if err != nil {
		l.Error(err.Error(), fields...)
	} else {
		l.Error("error occurred", fields...)
	}
}

// WarnWorkflow logs a warning message with workflow identity fields
func WarnWorkflow(info WorkflowInfo, msg string, fields ...zap.Field) {
	WithWorkflowInfo(info).Warn(msg, fields...)
}

