package trace

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/qiniu/x/xlog"
)

// TraceID identifies one invocation in the logs
type TraceID string

// 为不同的命令定义追踪前缀
const (
	TracePrefix   = "wsctl"
	ListPrefix    = "list"
	CurrentPrefix = "current"
	GetPrefix     = "get"
	UsePrefix     = "use"
	AddPrefix     = "add"
)

// generateTraceID 生成唯一的追踪 ID
func generateTraceID() TraceID {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// 随机数生成失败时使用时间戳
		return TraceID(fmt.Sprintf("%s_%d", TracePrefix, time.Now().UnixNano()))
	}
	return TraceID(fmt.Sprintf("%s_%x", TracePrefix, bytes))
}

// NewTraceID 创建新的追踪 ID
func NewTraceID(command string) TraceID {
	return TraceID(fmt.Sprintf("%s_%s", command, generateTraceID()))
}

type contextKey string

const traceLoggerKey contextKey = "trace_logger"

// NewContext 创建带有追踪 ID 的上下文
func NewContext(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, traceLoggerKey, xlog.New(string(traceID)))
}

// FromContext 从上下文中获取追踪日志器
func FromContext(ctx context.Context) *xlog.Logger {
	if logger, ok := ctx.Value(traceLoggerKey).(*xlog.Logger); ok {
		return logger
	}
	return nil
}

// GetTraceID 从上下文中获取追踪 ID
func GetTraceID(ctx context.Context) TraceID {
	logger := FromContext(ctx)
	if logger == nil {
		return ""
	}
	return TraceID(logger.ReqId)
}

// Info 记录信息级别的追踪日志
func Info(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Infof(format, args...)
	}
}

// Error 记录错误级别的追踪日志
func Error(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Errorf(format, args...)
	}
}

// Debug 记录调试级别的追踪日志
func Debug(ctx context.Context, format string, args ...interface{}) {
	if logger := FromContext(ctx); logger != nil {
		logger.Debugf(format, args...)
	}
}
