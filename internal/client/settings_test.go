package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/internal/mock"
)

func TestSettings_ServerURL(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
		err   error
		want  string
	}{
		{name: "stored", value: "http://portal:8080", ok: true, want: "http://portal:8080"},
		{name: "missing", want: "http://localhost:8080"},
		{name: "blank", value: "  ", ok: true, want: "http://localhost:8080"},
		{name: "read error", err: errors.New("disk I/O error"), want: "http://localhost:8080"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockClientStateRepository(ctrl)
			repo.EXPECT().GetSetting(gomock.Any(), settingServerURL).Return(tt.value, tt.ok, tt.err)

			s := NewSettings(repo, logger.Nop())
			assert.Equal(t, tt.want, s.ServerURL(context.Background(), "http://localhost:8080"))
		})
	}
}

func TestSettings_RememberAndForget(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientStateRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().SetSetting(gomock.Any(), settingServerURL, "http://portal:8080").Return(nil),
		repo.EXPECT().SetSetting(gomock.Any(), settingLastUsername, "admin").Return(nil),
		repo.EXPECT().DeleteSetting(gomock.Any(), settingLastUsername).Return(nil),
	)

	s := NewSettings(repo, logger.Nop())
	require.NoError(t, s.Remember(context.Background(), "http://portal:8080", "admin"))
	require.NoError(t, s.Forget(context.Background()))
}

func TestSettings_RememberStopsOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockClientStateRepository(ctrl)
	repo.EXPECT().SetSetting(gomock.Any(), settingServerURL, gomock.Any()).Return(errors.New("readonly database"))

	s := NewSettings(repo, logger.Nop())
	assert.Error(t, s.Remember(context.Background(), "http://portal:8080", "admin"))
}
