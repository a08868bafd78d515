package service

import (
	"context"

	"github.com/joblydev/jobly-api/internal/core"
	"github.com/joblydev/jobly-api/internal/domain/model"
	apperrors "github.com/joblydev/jobly-api/internal/errors"
)

// ApplicationServiceOptions groups dependencies for ApplicationService.
type ApplicationServiceOptions struct {
	Applications core.ApplicationRepository
	Jobs         core.JobRepository
}

// ApplicationService owns the application state machine. It never inspects
// the acting principal; who may call which transition is decided entirely at
// the route layer.
type ApplicationService struct {
	apps core.ApplicationRepository
	jobs core.JobRepository
}

// NewApplicationService constructs a new ApplicationService.
func NewApplicationService(opts ApplicationServiceOptions) *ApplicationService {
	return &ApplicationService{apps: opts.Applications, jobs: opts.Jobs}
}

// Create submits or resubmits an application for (username, jobID) with the
// desired state.
//
// Interested and applied are the legal initial states and run as a single
// atomic upsert, so concurrent submissions for the same key settle on one
// row. Accepted and rejected are not legal initial states; they run as a
// plain update that only succeeds if a record already exists. A repeated
// Create can therefore move an existing application into any of the four
// states, while a first Create is restricted to the initial two.
func (s *ApplicationService) Create(ctx context.Context, username string, jobID int64, desired string) (*model.Application, error) {
	state, ok := model.ParseApplicationState(desired)
	if !ok {
		return nil, apperrors.InvalidState("state must be one of: interested, applied, accepted, rejected")
	}

	if err := s.checkJobExists(ctx, jobID); err != nil {
		return nil, err
	}

	key := core.ApplicationKey{Username: username, JobID: jobID}

	if state.ValidInitial() {
		return s.apps.Upsert(ctx, key, state)
	}

	app, err := s.apps.UpdateState(ctx, key, state)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.InvalidState("an application cannot start as " + string(state))
		}
		return nil, err
	}
	return app, nil
}

// Update transitions an existing application to newState. Any of the four
// states is legal here; a missing record is NotFound.
func (s *ApplicationService) Update(ctx context.Context, username string, jobID int64, newState string) (*model.Application, error) {
	state, ok := model.ParseApplicationState(newState)
	if !ok {
		return nil, apperrors.InvalidState("state must be one of: interested, applied, accepted, rejected")
	}

	app, err := s.apps.UpdateState(ctx, core.ApplicationKey{Username: username, JobID: jobID}, state)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no application for user '%s' to job '%d'", username, jobID)
		}
		return nil, err
	}
	return app, nil
}

// Get retrieves an application by its key.
func (s *ApplicationService) Get(ctx context.Context, username string, jobID int64) (*model.Application, error) {
	app, err := s.apps.Get(ctx, core.ApplicationKey{Username: username, JobID: jobID})
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NotFoundf("There exists no application for user '%s' to job '%d'", username, jobID)
		}
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) checkJobExists(ctx context.Context, jobID int64) error {
	if s.jobs == nil {
		return nil
	}
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if apperrors.IsNotFound(err) {
			return apperrors.NotFoundf("There exists no job with id '%d'", jobID)
		}
		return err
	}
	return nil
}
