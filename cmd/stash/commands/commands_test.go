package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/cmd/stash/commands"
	"go.trai.ch/stash/internal/app"
	"go.trai.ch/stash/internal/build"
	"go.trai.ch/stash/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newCLI builds a CLI around mock with a logger that tolerates the
// persistent log-json flag.
func newCLI(t *testing.T, mock *mockApp) *commands.CLI {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().SetJSON(gomock.Any()).AnyTimes()
	return commands.New(mock, log)
}

type mockApp struct {
	statusFunc  func(ctx context.Context, paths []string, opts app.StatusOptions) error
	inspectFunc func(ctx context.Context, path string, opts app.InspectOptions) error
	warmFunc    func(ctx context.Context, paths []string, opts app.WarmOptions) error
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
	watchFunc   func(ctx context.Context) error
}

func (m *mockApp) Status(ctx context.Context, paths []string, opts app.StatusOptions) error {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Inspect(ctx context.Context, path string, opts app.InspectOptions) error {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx, path, opts)
	}
	return nil
}

func (m *mockApp) Warm(ctx context.Context, paths []string, opts app.WarmOptions) error {
	if m.warmFunc != nil {
		return m.warmFunc(ctx, paths, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func TestCommands_Status(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.StatusOptions
		var capturedPaths []string
		called := false

		mock := &mockApp{
			statusFunc: func(_ context.Context, paths []string, opts app.StatusOptions) error {
				capturedOpts = opts
				capturedPaths = paths
				called = true
				return nil
			},
		}

		cli := newCLI(t, mock)
		cli.SetArgs([]string{"status", "main.src", "--ci"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "plain", capturedOpts.OutputMode)
		assert.Equal(t, []string{"main.src"}, capturedPaths)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, _ []string, _ app.StatusOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := newCLI(t, mock)
		cli.SetArgs([]string{"status"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Inspect(t *testing.T) {
	t.Run("requires exactly one file", func(t *testing.T) {
		mock := &mockApp{
			inspectFunc: func(_ context.Context, _ string, _ app.InspectOptions) error {
				panic("should not be called")
			},
		}

		cli := newCLI(t, mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"inspect"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})

	t.Run("wires location flag", func(t *testing.T) {
		var capturedPath string
		var capturedOpts app.InspectOptions

		mock := &mockApp{
			inspectFunc: func(_ context.Context, path string, opts app.InspectOptions) error {
				capturedPath = path
				capturedOpts = opts
				return nil
			},
		}

		cli := newCLI(t, mock)
		cli.SetArgs([]string{"inspect", "main.src", "--location"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "main.src", capturedPath)
		assert.True(t, capturedOpts.ShowLocation)
	})
}

func TestCommands_Warm(t *testing.T) {
	var capturedOpts app.WarmOptions

	mock := &mockApp{
		warmFunc: func(_ context.Context, _ []string, opts app.WarmOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := newCLI(t, mock)
	cli.SetArgs([]string{"warm", "--jobs", "4"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, capturedOpts.Jobs)
}

func TestCommands_Clean(t *testing.T) {
	var capturedOpts app.CleanOptions

	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
			capturedOpts = opts
			return nil
		},
	}

	cli := newCLI(t, mock)
	cli.SetArgs([]string{"clean", "--all"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, capturedOpts.All)
}

func TestCommands_Watch(t *testing.T) {
	called := false

	mock := &mockApp{
		watchFunc: func(_ context.Context) error {
			called = true
			return nil
		},
	}

	cli := newCLI(t, mock)
	cli.SetArgs([]string{"watch"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := newCLI(t, mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
