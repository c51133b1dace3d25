package logging

import "context"

type logDataContextKey struct{}

// ContextWithLogData attaches a LogData to the context for handlers to add
// timings and fields to the request's completion log line.
func ContextWithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside a logged request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}
