package aiassist

import "go.uber.org/zap"

// Logger 全局日志记录器，默认丢弃所有日志
var Logger = zap.NewNop().Sugar()

// SetLogger 设置自定义日志记录器，nil 恢复为丢弃
func SetLogger(logger *zap.SugaredLogger) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	Logger = logger
}
