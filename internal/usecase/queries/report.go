package queries

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/report_mock.go -package=queriesmock

import (
	"context"

	"residencial-admin/internal/domain/report"
	"residencial-admin/internal/export"
	"residencial-admin/internal/observability/metrics"
	"residencial-admin/internal/pkg/errs"
	"residencial-admin/internal/usecase/shared"
)

type ReportQueries interface {
	Generate(ctx context.Context, kind string) (*report.Report, error)
	// ExportText delivers the plain-text report to sink.
	ExportText(ctx context.Context, kind string, sink export.Sink) error
	// ExportCSV delivers the delimited export; false means there was nothing to export.
	ExportCSV(ctx context.Context, kind string, sink export.Sink) (bool, error)
}

type reportQueriesImpl struct {
	uow        shared.UnitOfWork
	aggregator *report.Aggregator
	writer     *export.Writer
}

func NewReportQueries(uow shared.UnitOfWork, aggregator *report.Aggregator, writer *export.Writer) ReportQueries {
	return &reportQueriesImpl{
		uow:        uow,
		aggregator: aggregator,
		writer:     writer,
	}
}

func (q *reportQueriesImpl) Generate(ctx context.Context, kind string) (*report.Report, error) {
	records, err := q.collection(ctx, kind)
	if err != nil {
		return nil, err
	}
	r := q.aggregator.Aggregate(records)
	metrics.ObserveReport(string(r.Kind()))
	return &r, nil
}

func (q *reportQueriesImpl) ExportText(ctx context.Context, kind string, sink export.Sink) error {
	r, err := q.Generate(ctx, kind)
	if err != nil {
		return err
	}
	return q.writer.WritePlainTextReport(ctx, sink, *r)
}

func (q *reportQueriesImpl) ExportCSV(ctx context.Context, kind string, sink export.Sink) (bool, error) {
	records, err := q.collection(ctx, kind)
	if err != nil {
		return false, err
	}
	name := export.DelimitedBasename(records.Kind(), q.aggregator.Building())
	return q.writer.WriteDelimited(ctx, sink, export.ToRows(records), name)
}

// collection snapshots the records of one kind as a report input.
func (q *reportQueriesImpl) collection(ctx context.Context, kind string) (report.Collection, error) {
	k, err := report.ParseKind(kind)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUnknownReportKind)
	}

	var records report.Collection
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		switch k {
		case report.KindPayments:
			list, err := tx.Payments().List(ctx)
			records = report.Payments(list)
			return err
		case report.KindUsers:
			list, err := tx.Users().List(ctx)
			records = report.Users(list)
			return err
		default:
			list, err := tx.Reservations().List(ctx)
			records = report.Reservations(list)
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
