// Package cli implements the cubetex command-line interface.
//
// This package provides commands for rendering diagram specs to TikZ,
// inspecting them in the terminal, serving the render API and managing the
// artifact cache. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render spec files to tex, tikz or json (optionally watching them)
//   - example: Print the annotated tensor example or write its spec
//   - inspect: Browse the faces and slices of a spec interactively
//   - serve: Run the HTTP render API
//   - cache: Manage the artifact cache
//
// # Logging
//
// The root --verbose (-v) flag lowers the level to debug, which adds cache
// and compose details. Commands reach the logger through their context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/cubetex/pkg/pipeline"
)

// newLogger writes timestamped lines ("14:32:01.45 INFO rendered ...").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// batchTimer logs the outcome of one render batch with its wall time.
type batchTimer struct {
	logger *log.Logger
	start  time.Time
}

func startBatch(l *log.Logger) batchTimer {
	return batchTimer{logger: l, start: time.Now()}
}

// done logs the batch size and how many of its specs came from the cache:
//
//	14:32:01.45 INFO rendered specs=3 cached=1 elapsed=12ms
func (b batchTimer) done(results []*pipeline.Result) {
	cached := 0
	for _, res := range results {
		if res.CacheInfo.RenderHit {
			cached++
		}
	}
	b.logger.Info("rendered", "specs", len(results), "cached", cached,
		"elapsed", time.Since(b.start).Round(time.Millisecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
