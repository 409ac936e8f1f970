package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bbforge/bbforge/internal/bbcode"
	"github.com/bbforge/bbforge/internal/parser"
)

// Worker processes a single conversion job.
type Worker struct {
	log         *slog.Logger
	pdfFallback bool
}

func NewWorker(log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{log: log, pdfFallback: pdfFallback}
}

// Process runs the full conversion pass for a job. The pass is a unit: a
// job either completes with the full BBCode document or fails with no
// partial output.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	if err := ctx.Err(); err != nil {
		job.Fail("queued", err)
		return
	}

	// Phase 1: Parse
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.Fail("parsing", err)
		return
	}
	if pp, ok := p.(*parser.PDFParser); ok {
		pp.FallbackPdftotext = w.pdfFallback
	}

	tree, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.Fail("parsing", fmt.Errorf("parse: %w", err))
		return
	}

	// Phase 2: Transcode
	job.SetStatus(StatusTranscoding, "transcoding")
	out, err := bbcode.Transcode(tree)
	if err != nil {
		var unsup *bbcode.UnsupportedError
		if errors.As(err, &unsup) {
			log.Error("document uses unsupported construct", "construct", unsup.Construct)
		} else {
			log.Error("transcode failed", "error", err)
		}
		job.Fail("transcoding", err)
		return
	}

	job.SetResult(out)
	log.Info("conversion complete", "bytes", len(out))
}
