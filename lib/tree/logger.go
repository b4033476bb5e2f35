package tree

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var treeLogger atomic.Pointer[zap.Logger]

func init() {
	treeLogger.Store(zap.NewNop())
}

// SetLogger replaces the package logger that reports traversal misuse.
// A nil logger restores the no-op default.
func SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	treeLogger.Store(logger)
}
