package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/dgallion1/tagcloud/internal/parser"
	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

// Worker processes a single cloud job.
type Worker struct {
	seps      tagcloud.SeparatorSet
	parserOpt parser.Options
	stats     *RunStats
	log       *slog.Logger
}

func NewWorker(seps tagcloud.SeparatorSet, opts parser.Options, stats *RunStats, log *slog.Logger) *Worker {
	return &Worker{
		seps:      seps,
		parserOpt: opts,
		stats:     stats,
		log:       log,
	}
}

// Process runs the full pipeline for a job. The job ends either completed
// with a cloud or failed with a classified error; never partially.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename, "n", job.Terms)

	if err := ctx.Err(); err != nil {
		log.Warn("job cancelled before start", "error", err)
		job.Fail(FailureCancelled, err)
		return
	}

	job.SetStatus(StatusParsing)
	start := time.Now()
	cloud, err := Generate(bytes.NewReader(job.FileData()), Request{
		Filename:   job.Filename,
		Title:      job.Title,
		Terms:      job.Terms,
		Separators: w.seps,
		Parser:     w.parserOpt,
	}, job.SetStage)
	elapsed := time.Since(start)

	if err != nil {
		kind := Classify(err)
		log.Error("cloud generation failed", "failure", kind, "error", err)
		job.Fail(kind, err)
		return
	}

	w.stats.Record(elapsed.Milliseconds())
	job.Complete(cloud)
	log.Info("cloud generated",
		"terms", len(cloud.Terms),
		"min_count", cloud.MinCount,
		"max_count", cloud.MaxCount,
		"duration_ms", elapsed.Milliseconds(),
	)
}
