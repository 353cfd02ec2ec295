package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"go-timesheet/internal/shared/contextutil"
)

// StdoutAuditLogger writes audit events through the global zap logger.
// Request and manager ids are picked up from the context when a request
// triggered the event; lifecycle events carry neither.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	fields := []zap.Field{
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	}
	if rid := contextutil.GetRequestID(ctx); rid != "" {
		fields = append(fields, zap.String("request_id", rid))
	}
	if uid := contextutil.GetUserID(ctx); uid != "" {
		fields = append(fields, zap.String("manager_id", uid))
	}
	zap.L().Named("audit").Info("audit event", fields...)
}
