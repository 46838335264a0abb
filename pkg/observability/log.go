package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. It implements
// RenderHooks, CacheHooks and ServerHooks.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l.
func NewLogHooks(l *log.Logger) *LogHooks {
	return &LogHooks{logger: l.WithPrefix("hooks")}
}

func (h *LogHooks) OnDecodeStart(_ context.Context, size int) {
	h.logger.Debug("decode start", "bytes", size)
}

func (h *LogHooks) OnDecodeComplete(_ context.Context, elementCount int, d time.Duration, err error) {
	h.done("decode", d, err, "elements", elementCount)
}

func (h *LogHooks) OnBuildStart(_ context.Context, elementCount int) {
	h.logger.Debug("build start", "elements", elementCount)
}

func (h *LogHooks) OnBuildComplete(_ context.Context, itemCount int, d time.Duration, err error) {
	h.done("build", d, err, "items", itemCount)
}

func (h *LogHooks) OnEncodeStart(_ context.Context, format string) {
	h.logger.Debug("encode start", "format", format)
}

func (h *LogHooks) OnEncodeComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.done("encode", d, err, "format", format, "bytes", size)
}

func (h *LogHooks) OnCacheHit(_ context.Context, format string) {
	h.logger.Debug("cache hit", "format", format)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, format string) {
	h.logger.Debug("cache miss", "format", format)
}

func (h *LogHooks) OnCacheSet(_ context.Context, format string, size int) {
	h.logger.Debug("cache set", "format", format, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, requestID, method, path string) {
	h.logger.Debug("request", "id", requestID, "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, requestID string, status, size int, d time.Duration) {
	h.logger.Debug("response", "id", requestID, "status", status, "bytes", size, "duration", d.Round(time.Microsecond))
}

func (h *LogHooks) done(stage string, d time.Duration, err error, kv ...any) {
	kv = append(kv, "duration", d.Round(time.Microsecond))
	if err != nil {
		h.logger.Debug(stage+" failed", append(kv, "err", err)...)
		return
	}
	h.logger.Debug(stage+" done", kv...)
}

var (
	_ RenderHooks = (*LogHooks)(nil)
	_ CacheHooks  = (*LogHooks)(nil)
	_ ServerHooks = (*LogHooks)(nil)
)
