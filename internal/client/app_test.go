package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sales-admin/internal/config"
	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/mock"
	"github.com/MKhiriev/sales-admin/internal/service"
	"github.com/MKhiriev/sales-admin/internal/tui"
	"github.com/MKhiriev/sales-admin/models"
)

type fakeDashboard struct {
	err   error
	calls int
}

func (d *fakeDashboard) Run(context.Context) error {
	d.calls++
	return d.err
}

type fakeCloser struct {
	closed bool
}

func (c *fakeCloser) Close() error {
	c.closed = true
	return nil
}

func newTestApp(t *testing.T, ui Dashboard, closer *fakeCloser) (*App, *mock.MockDraftService, *mock.MockDraftService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	sessions := mock.NewMockSessionService(ctrl)
	clientDraft := mock.NewMockDraftService(ctrl)
	agentDraft := mock.NewMockDraftService(ctrl)

	// Workers may tick once before Run returns.
	sessions.EXPECT().CheckExpiry(gomock.Any()).Return(false).AnyTimes()
	for _, d := range []*mock.MockDraftService{clientDraft, agentDraft} {
		d.EXPECT().Autosave(gomock.Any()).Return(false, nil).AnyTimes()
	}
	clientDraft.EXPECT().Kind().Return(models.KindClient).AnyTimes()
	agentDraft.EXPECT().Kind().Return(models.KindAgent).AnyTimes()

	services := &service.ClientServices{
		Sessions:    sessions,
		ClientDraft: clientDraft,
		AgentDraft:  agentDraft,
		Entities:    mock.NewMockEntityService(ctrl),
	}
	cfg := config.ClientWorkers{ExpiryCheckInterval: time.Hour, DraftAutosaveInterval: time.Hour}

	app, err := NewApp(services, ui, closer, cfg, logger.Nop())
	require.NoError(t, err)
	return app, clientDraft, agentDraft
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "clean exit"},
		{name: "signal", uiErr: context.Canceled},
		{name: "dashboard failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeDashboard{err: tt.uiErr}
			closer := &fakeCloser{}
			app, clientDraft, agentDraft := newTestApp(t, ui, closer)

			clientDraft.EXPECT().Restore(gomock.Any()).Return(true, nil)
			agentDraft.EXPECT().Restore(gomock.Any()).Return(false, errors.New("corrupt snapshot"))

			err := app.Run(context.Background())

			if tt.wantErr {
				assert.ErrorContains(t, err, "no tty")
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, ui.calls)
			assert.True(t, closer.closed)
		})
	}
}

func TestNewApp_RequiresDashboard(t *testing.T) {
	_, err := NewApp(&service.ClientServices{}, nil, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}
