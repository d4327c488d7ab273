package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/arena/pkg/observability"
)

// logHooks reports pipeline and cache events at debug level.
type logHooks struct {
	logger *log.Logger
}

// EnableDebugHooks routes pipeline and cache events to the CLI logger.
// main calls it when --verbose is set.
func (c *CLI) EnableDebugHooks() {
	h := &logHooks{logger: c.Logger}
	observability.SetPipelineHooks(h)
	observability.SetCacheHooks(h)
}

func (h *logHooks) OnGenerateStart(_ context.Context, input string) {
	h.logger.Debug("generate", "input", input)
}

func (h *logHooks) OnGenerateComplete(_ context.Context, input string, sections int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("generate failed", "input", input, "error", err)
		return
	}
	h.logger.Debug("generated", "input", input, "sections", sections, "duration", d)
}

func (h *logHooks) OnEdit(_ context.Context, op string, applied bool) {
	h.logger.Debug("edit", "op", op, "applied", applied)
}

func (h *logHooks) OnBOM(_ context.Context, lines, total int, d time.Duration) {
	h.logger.Debug("bom", "lines", lines, "parts", total, "duration", d)
}

func (h *logHooks) OnRenderStart(_ context.Context, formats []string) {
	h.logger.Debug("render", "formats", formats)
}

func (h *logHooks) OnRenderComplete(_ context.Context, formats []string, d time.Duration, err error) {
	h.logger.Debug("rendered", "formats", formats, "duration", d, "error", err)
}

func (h *logHooks) OnCacheHit(_ context.Context, stage string) {
	h.logger.Debug("cache hit", "stage", stage)
}

func (h *logHooks) OnCacheMiss(_ context.Context, stage string) {
	h.logger.Debug("cache miss", "stage", stage)
}

func (h *logHooks) OnCacheSet(_ context.Context, stage string, size int) {
	h.logger.Debug("cache set", "stage", stage, "bytes", size)
}

var (
	_ observability.PipelineHooks = (*logHooks)(nil)
	_ observability.CacheHooks    = (*logHooks)(nil)
)
