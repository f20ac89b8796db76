// Package mocks provides test doubles for the analyze service.
package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"

	analyze "github.com/govlens/govlens/internal/analyze"
	model "github.com/govlens/govlens/internal/model"
)

// MockService is a mock type for the Service interface.
type MockService struct {
	mock.Mock
}

// Run provides a mock function with given fields: ctx, req
func (_m *MockService) Run(ctx context.Context, req analyze.Request) (*model.Report, error) {
	ret := _m.Called(ctx, req)

	if len(ret) == 0 {
		panic("no return value specified for Run")
	}

	var r0 *model.Report
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, analyze.Request) (*model.Report, error)); ok {
		return rf(ctx, req)
	}
	if rf, ok := ret.Get(0).(func(context.Context, analyze.Request) *model.Report); ok {
		r0 = rf(ctx, req)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*model.Report)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, analyze.Request) error); ok {
		r1 = rf(ctx, req)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}
