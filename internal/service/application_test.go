package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
	"github.com/joblydev/jobly-api/internal/mocks"
)

const testJobID = int64(42)

func newApplicationService(t *testing.T) (*mocks.MockApplicationRepository, *mocks.MockJobRepository, *ApplicationService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	appRepo := mocks.NewMockApplicationRepository(ctrl)
	jobRepo := mocks.NewMockJobRepository(ctrl)

	svc := NewApplicationService(ApplicationServiceOptions{
		Applications: appRepo,
		Jobs:         jobRepo,
	})
	return appRepo, jobRepo, svc
}

func expectJobExists(jobRepo *mocks.MockJobRepository) {
	jobRepo.EXPECT().GetByID(gomock.Any(), testJobID).
		Return(&model.Job{ID: testJobID, Title: "Engineer", CompanyHandle: "acme"}, nil)
}

func testApplication(state model.ApplicationState) *model.Application {
	return &model.Application{
		Username:  "rocky",
		JobID:     testJobID,
		State:     state,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestApplicationService_Create_InitialState(t *testing.T) {
	t.Parallel()
	appRepo, jobRepo, svc := newApplicationService(t)
	ctx := context.Background()

	expectJobExists(jobRepo)
	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	appRepo.EXPECT().Upsert(ctx, key, model.StateInterested).
		Return(testApplication(model.StateInterested), nil)

	app, err := svc.Create(ctx, "rocky", testJobID, "interested")
	require.NoError(t, err)
	assert.Equal(t, model.StateInterested, app.State)
}

func TestApplicationService_Create_ResubmitOverwritesState(t *testing.T) {
	t.Parallel()
	appRepo, jobRepo, svc := newApplicationService(t)
	ctx := context.Background()

	// Both submissions go through the same upsert path; the second overwrites
	// the state of the existing row instead of erroring.
	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	expectJobExists(jobRepo)
	appRepo.EXPECT().Upsert(ctx, key, model.StateInterested).
		Return(testApplication(model.StateInterested), nil)
	expectJobExists(jobRepo)
	appRepo.EXPECT().Upsert(ctx, key, model.StateApplied).
		Return(testApplication(model.StateApplied), nil)

	_, err := svc.Create(ctx, "rocky", testJobID, "interested")
	require.NoError(t, err)
	app, err := svc.Create(ctx, "rocky", testJobID, "applied")
	require.NoError(t, err)
	assert.Equal(t, model.StateApplied, app.State)
}

func TestApplicationService_Create_AcceptedWithoutRecord(t *testing.T) {
	t.Parallel()
	appRepo, jobRepo, svc := newApplicationService(t)
	ctx := context.Background()

	expectJobExists(jobRepo)
	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	appRepo.EXPECT().UpdateState(ctx, key, model.StateAccepted).
		Return(nil, apperrors.NotFound("application not found"))

	_, err := svc.Create(ctx, "rocky", testJobID, "accepted")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestApplicationService_Create_AcceptedWithExistingRecord(t *testing.T) {
	t.Parallel()
	appRepo, jobRepo, svc := newApplicationService(t)
	ctx := context.Background()

	// The create path can move an existing application to a responded state;
	// the initial-state restriction only bites when no record exists.
	expectJobExists(jobRepo)
	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	appRepo.EXPECT().UpdateState(ctx, key, model.StateAccepted).
		Return(testApplication(model.StateAccepted), nil)

	app, err := svc.Create(ctx, "rocky", testJobID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, model.StateAccepted, app.State)
}

func TestApplicationService_Create_UnknownState(t *testing.T) {
	t.Parallel()
	_, _, svc := newApplicationService(t)

	_, err := svc.Create(context.Background(), "rocky", testJobID, "ghosted")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestApplicationService_Create_MissingJob(t *testing.T) {
	t.Parallel()
	_, jobRepo, svc := newApplicationService(t)
	ctx := context.Background()

	jobRepo.EXPECT().GetByID(gomock.Any(), testJobID).
		Return(nil, apperrors.NotFound("job not found"))

	_, err := svc.Create(ctx, "rocky", testJobID, "interested")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_Update_Success(t *testing.T) {
	t.Parallel()
	appRepo, _, svc := newApplicationService(t)
	ctx := context.Background()

	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	appRepo.EXPECT().UpdateState(ctx, key, model.StateRejected).
		Return(testApplication(model.StateRejected), nil)

	app, err := svc.Update(ctx, "rocky", testJobID, "rejected")
	require.NoError(t, err)
	assert.Equal(t, model.StateRejected, app.State)
}

func TestApplicationService_Update_UnknownState(t *testing.T) {
	t.Parallel()
	_, _, svc := newApplicationService(t)

	// No repository expectation: an unrecognized state must fail before any
	// store call, leaving existing records untouched.
	_, err := svc.Update(context.Background(), "rocky", testJobID, "maybe")
	require.Error(t, err)
	assert.True(t, apperrors.IsInvalidState(err))
}

func TestApplicationService_Update_MissingRecord(t *testing.T) {
	t.Parallel()
	appRepo, _, svc := newApplicationService(t)
	ctx := context.Background()

	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	appRepo.EXPECT().UpdateState(ctx, key, model.StateAccepted).
		Return(nil, apperrors.NotFound("application not found"))

	_, err := svc.Update(ctx, "rocky", testJobID, "accepted")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestApplicationService_Update_CaseInsensitiveState(t *testing.T) {
	t.Parallel()
	appRepo, _, svc := newApplicationService(t)
	ctx := context.Background()

	key := core.ApplicationKey{Username: "rocky", JobID: testJobID}
	appRepo.EXPECT().UpdateState(ctx, key, model.StateApplied).
		Return(testApplication(model.StateApplied), nil)

	_, err := svc.Update(ctx, "rocky", testJobID, "  Applied ")
	require.NoError(t, err)
}
