package export

import (
	"context"
	"log/slog"

	"residencial-admin/internal/domain/report"
	"residencial-admin/internal/observability/metrics"
	"residencial-admin/internal/pkg/errs"
)

const (
	formatCSV  = "csv"
	formatText = "text"
)

type Writer struct {
	logger *slog.Logger
}

func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WriteDelimited delivers rows as "<filename>.csv". It reports false without touching the sink
// when there are no rows.
func (w *Writer) WriteDelimited(ctx context.Context, sink Sink, rows []Row, filename string) (bool, error) {
	if len(rows) == 0 {
		metrics.ObserveExport(formatCSV, "skipped")
		return false, nil
	}

	header := rows[0].Keys()
	for i, row := range rows[1:] {
		if !shapeMatches(header, row) {
			w.logger.WarnContext(ctx, "export row shape differs from header",
				"file", filename,
				"row", i+1,
				"header", header,
				"keys", row.Keys())
		}
	}

	body, err := EncodeDelimited(rows)
	if err != nil {
		metrics.ObserveExport(formatCSV, "failed")
		return false, errs.Mark(errs.Wrap(err, "encode delimited export"), errs.ErrExportFailed)
	}
	file := File{Name: filename + ".csv", ContentType: ContentTypeCSV, Body: body}
	if err := sink.Deliver(ctx, file); err != nil {
		metrics.ObserveExport(formatCSV, "failed")
		return false, errs.Mark(errs.Wrapf(err, "deliver %s", file.Name), errs.ErrExportFailed)
	}

	metrics.ObserveExport(formatCSV, "delivered")
	w.logger.InfoContext(ctx, "export delivered", "file", file.Name, "rows", len(rows))
	return true, nil
}

func (w *Writer) WritePlainTextReport(ctx context.Context, sink Sink, r report.Report) error {
	body, err := EncodePlainText(r)
	if err != nil {
		metrics.ObserveExport(formatText, "failed")
		return errs.Mark(errs.Wrap(err, "encode text report"), errs.ErrExportFailed)
	}
	file := File{Name: TextFilename(r.Title), ContentType: ContentTypeText, Body: body}
	if err := sink.Deliver(ctx, file); err != nil {
		metrics.ObserveExport(formatText, "failed")
		return errs.Mark(errs.Wrapf(err, "deliver %s", file.Name), errs.ErrExportFailed)
	}

	metrics.ObserveExport(formatText, "delivered")
	w.logger.InfoContext(ctx, "report delivered", "file", file.Name, "kind", r.Kind())
	return nil
}
