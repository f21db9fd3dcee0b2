package job

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tabletop-events-api/internal/domain"
	"tabletop-events-api/internal/metrics"
)

// SnapshotSink receives table counts
type SnapshotSink interface {
	SetSnapshot(s metrics.Snapshot)
}

// BusinessMetricsJob counts accounts, events, participants and favorites and
// publishes them as gauges.
type BusinessMetricsJob struct {
	db      *gorm.DB
	sink    SnapshotSink
	logger  *zap.Logger
	timeout time.Duration
	now     func() time.Time
}

// NewBusinessMetricsJob creates a new BusinessMetricsJob instance
func NewBusinessMetricsJob(db *gorm.DB, sink SnapshotSink, logger *zap.Logger) *BusinessMetricsJob {
	return &BusinessMetricsJob{
		db:      db,
		sink:    sink,
		logger:  logger,
		timeout: 5 * time.Second,
		now:     time.Now,
	}
}

// Run executes one collection pass. It satisfies cron.Job.
func (j *BusinessMetricsJob) Run() {
	defer func() {
		if r := recover(); r != nil {
			j.logger.Error("Panic in business metrics collection", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	snapshot, err := j.collect(ctx)
	if err != nil {
		j.logger.Error("Failed to collect business metrics", zap.Error(err))
		return
	}

	j.sink.SetSnapshot(snapshot)
	j.logger.Debug("Business metrics collected",
		zap.Int64("accounts", snapshot.Accounts),
		zap.Int64("events", snapshot.Events),
		zap.Int64("upcoming_events", snapshot.UpcomingEvents),
	)
}

func (j *BusinessMetricsJob) collect(ctx context.Context) (metrics.Snapshot, error) {
	var s metrics.Snapshot
	db := j.db.WithContext(ctx)

	if err := db.Model(&domain.Account{}).Count(&s.Accounts).Error; err != nil {
		return s, err
	}
	if err := db.Model(&domain.Event{}).Count(&s.Events).Error; err != nil {
		return s, err
	}
	if err := db.Model(&domain.Event{}).Where("date >= ?", j.now().UTC()).Count(&s.UpcomingEvents).Error; err != nil {
		return s, err
	}
	if err := db.Model(&domain.Participant{}).Count(&s.Participants).Error; err != nil {
		return s, err
	}
	if err := db.Model(&domain.Favorite{}).Count(&s.Favorites).Error; err != nil {
		return s, err
	}
	return s, nil
}
