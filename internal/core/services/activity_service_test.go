package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portssvc "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ActivityLogRepository ---
type MockActivityLogRepository struct {
	mock.Mock
}

func (m *MockActivityLogRepository) FindActivityLogByID(ctx context.Context, logID string) (*domain.ActivityLog, error) {
	args := m.Called(ctx, logID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActivityLog), args.Error(1)
}

func (m *MockActivityLogRepository) FindActivityLogs(ctx context.Context, limit, offset int, search string) ([]domain.ActivityLog, int64, error) {
	args := m.Called(ctx, limit, offset, search)
	var entries []domain.ActivityLog
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.ActivityLog)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityLogRepository) SaveActivityLog(ctx context.Context, entry domain.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityLogRepository) PurgeActivityLogs(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

// --- Test Suite ---
type ActivityServiceTestSuite struct {
	suite.Suite
	mockActivityRepo *MockActivityLogRepository
	service          portssvc.ActivitySvcFacade
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.mockActivityRepo = new(MockActivityLogRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.service = services.NewActivityService(suite.mockActivityRepo, logger)
}

// --- Record Tests ---

func (suite *ActivityServiceTestSuite) TestRecord_FillsDefaultsAndWritesAsync() {
	saved := make(chan domain.ActivityLog, 1)

	suite.mockActivityRepo.On("SaveActivityLog", mock.Anything, mock.AnythingOfType("domain.ActivityLog")).
		Return(nil).Once().
		Run(func(args mock.Arguments) {
			saved <- args.Get(1).(domain.ActivityLog)
		})

	suite.service.Record(context.Background(), domain.ActivityLog{
		ActorID:  uuid.NewString(),
		Action:   "create",
		Resource: "users",
	})

	select {
	case entry := <-saved:
		suite.NotEmpty(entry.LogID)
		suite.False(entry.CreatedAt.IsZero())
		suite.Equal(domain.ActivitySuccess, entry.Status)
	case <-time.After(2 * time.Second):
		suite.FailNow("audit entry was never written")
	}
}

func (suite *ActivityServiceTestSuite) TestRecord_SurvivesCancelledRequestContext() {
	saved := make(chan struct{}, 1)

	suite.mockActivityRepo.On("SaveActivityLog", mock.Anything, mock.AnythingOfType("domain.ActivityLog")).
		Return(nil).Once().
		Run(func(args mock.Arguments) {
			writeCtx := args.Get(0).(context.Context)
			assert.NoError(suite.T(), writeCtx.Err())
			saved <- struct{}{}
		})

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the request finished before the write ran

	suite.service.Record(ctx, domain.ActivityLog{Action: "login", Resource: "auth"})

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		suite.FailNow("audit entry was never written")
	}
}

func (suite *ActivityServiceTestSuite) TestRecord_SwallowsRepositoryError() {
	done := make(chan struct{}, 1)

	suite.mockActivityRepo.On("SaveActivityLog", mock.Anything, mock.AnythingOfType("domain.ActivityLog")).
		Return(assert.AnError).Once().
		Run(func(args mock.Arguments) {
			done <- struct{}{}
		})

	// Must not panic or surface the failure.
	suite.service.Record(context.Background(), domain.ActivityLog{Action: "delete", Resource: "roles"})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		suite.FailNow("audit write never attempted")
	}
}

// --- Purge Tests ---

func (suite *ActivityServiceTestSuite) TestPurgeActivityLogs_Success() {
	ctx := context.Background()
	olderThanDays := 90

	suite.mockActivityRepo.On("PurgeActivityLogs", ctx, mock.MatchedBy(func(before time.Time) bool {
		expected := time.Now().AddDate(0, 0, -olderThanDays)
		return before.Sub(expected).Abs() < time.Minute
	})).Return(int64(123), nil).Once()

	purged, err := suite.service.PurgeActivityLogs(ctx, olderThanDays, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(int64(123), purged)
	suite.mockActivityRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestPurgeActivityLogs_RejectsNonPositiveWindow() {
	ctx := context.Background()

	purged, err := suite.service.PurgeActivityLogs(ctx, 0, uuid.NewString())

	suite.Require().Error(err)
	suite.Zero(purged)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockActivityRepo.AssertNotCalled(suite.T(), "PurgeActivityLogs", mock.Anything, mock.Anything)
}

// --- Read Tests ---

func (suite *ActivityServiceTestSuite) TestGetActivityLogByID_NotFound() {
	ctx := context.Background()
	logID := uuid.NewString()

	suite.mockActivityRepo.On("FindActivityLogByID", ctx, logID).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.GetActivityLogByID(ctx, logID)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestActivityService(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
