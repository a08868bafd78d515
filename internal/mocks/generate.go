// Package mocks provides generated gomock implementations of the core
// repository interfaces for service and handler tests.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=company_repository_mock.go github.com/joblydev/jobly-api/internal/core CompanyRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go github.com/joblydev/jobly-api/internal/core JobRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=user_repository_mock.go github.com/joblydev/jobly-api/internal/core UserRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=application_repository_mock.go github.com/joblydev/jobly-api/internal/core ApplicationRepository
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=cache_repository_mock.go github.com/joblydev/jobly-api/internal/core CacheRepository
