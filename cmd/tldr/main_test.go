package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/tldr/internal/adapters/telemetry"
	"go.trai.ch/tldr/internal/app"
	"go.trai.ch/tldr/internal/core/domain"
	"go.trai.ch/tldr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type testComponents struct {
	loader  *mocks.MockConfigLoader
	fetcher *mocks.MockPageFetcher
	logger  *mocks.MockLogger
	provide ComponentProvider
}

func newTestComponents(t *testing.T) *testComponents {
	t.Helper()
	ctrl := gomock.NewController(t)

	tc := &testComponents{
		loader:  mocks.NewMockConfigLoader(ctrl),
		fetcher: mocks.NewMockPageFetcher(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	tc.logger.EXPECT().SetOutput(gomock.Any()).AnyTimes()
	tc.logger.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	tc.logger.EXPECT().SetVerbose(gomock.Any()).AnyTimes()
	tc.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	application := app.New(tc.loader, tc.fetcher, tc.logger, telemetry.NewNoOpTracer())
	tc.provide = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{
			App:    application,
			Logger: tc.logger,
		}, func() {}, nil
	}
	return tc
}

// TestRun_Success verifies that the page body reaches stdout and run returns 0.
func TestRun_Success(t *testing.T) {
	tc := newTestComponents(t)
	tc.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)
	tc.fetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), domain.PageRef{Name: "foo", Platform: domain.PlatformCommon}).
		Return(io.NopCloser(strings.NewReader("Usage: foo\n")), nil)

	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"foo"}, stdout, stderr, tc.provide)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "Usage: foo\n", stdout.String())
	assert.Empty(t, stderr.String())
}

// TestRun_FetchError verifies that a failed lookup is logged once and run returns 1.
func TestRun_FetchError(t *testing.T) {
	tc := newTestComponents(t)
	tc.loader.EXPECT().Load("").Return(domain.DefaultConfig(), nil)

	second := &domain.ResponseError{Command: "bar", Platform: domain.HostPlatform, StatusCode: http.StatusNotFound}
	gomock.InOrder(
		tc.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &domain.ResponseError{Command: "bar", Platform: domain.PlatformCommon, StatusCode: http.StatusNotFound}),
		tc.fetcher.EXPECT().Fetch(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, second),
	)
	tc.logger.EXPECT().Error(second).Times(1)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"bar"}, stdout, new(bytes.Buffer), tc.provide)

	assert.Equal(t, 1, exitCode)
	assert.Empty(t, stdout.String())
}

// TestRun_UsageError verifies that a missing argument prints usage, skips the network and returns 2.
func TestRun_UsageError(t *testing.T) {
	tc := newTestComponents(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), nil, new(bytes.Buffer), stderr, tc.provide)

	assert.Equal(t, 2, exitCode)
	assert.Contains(t, stderr.String(), "Error: missing command name")
	assert.Contains(t, stderr.String(), "Usage:")
}

// TestRun_Version verifies that --version succeeds without touching the app.
func TestRun_Version(t *testing.T) {
	tc := newTestComponents(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"--version"}, stdout, new(bytes.Buffer), tc.provide)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "tldr version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"foo"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}
