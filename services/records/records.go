package records

import (
	"context"
	"time"

	"go.uber.org/zap"

	bookingRepo "turfbook/database/repository/booking"
	recordsRepo "turfbook/database/repository/records"
	"turfbook/models"
	"turfbook/utils"
)

// RecordService feeds the analytics archive and answers dashboard queries
// against it.
type RecordService interface {
	// ArchivePast copies every booking dated before today into the archive,
	// resuming from the last archived date. Returns how many were archived.
	ArchivePast(ctx context.Context, now time.Time) (int, error)
	Summary(ctx context.Context, startISO, endISO string) (*models.AnalyticsSummary, error)
}

type DefaultRecordService struct {
	Bookings bookingRepo.BookingRepository
	Records  recordsRepo.BookingRecordRepository
}

func NewRecordService(bookings bookingRepo.BookingRepository, records recordsRepo.BookingRecordRepository) *DefaultRecordService {
	return &DefaultRecordService{Bookings: bookings, Records: records}
}

// archiveHorizonDays bounds the first run, before any date was archived.
const archiveHorizonDays = 365

func (s *DefaultRecordService) ArchivePast(ctx context.Context, now time.Time) (int, error) {
	from, err := s.Records.LastArchivedDate(ctx)
	if err != nil {
		return 0, err
	}
	if from == "" {
		from = now.UTC().AddDate(0, 0, -archiveHorizonDays).Format("2006-01-02")
	}
	yesterday := now.UTC().AddDate(0, 0, -1).Format("2006-01-02")
	if from > yesterday {
		return 0, nil
	}

	bookings, err := s.Bookings.QueryRange(ctx, from, yesterday, "")
	if err != nil {
		return 0, err
	}
	if len(bookings) == 0 {
		return 0, nil
	}
	n, err := s.Records.Archive(ctx, bookings)
	if err != nil {
		return 0, err
	}
	utils.GetLogger().Info("archived past bookings",
		zap.Int("count", n),
		zap.String("from", from),
		zap.String("until", yesterday))
	return n, nil
}

func (s *DefaultRecordService) Summary(ctx context.Context, startISO, endISO string) (*models.AnalyticsSummary, error) {
	return s.Records.Summary(ctx, startISO, endISO)
}
