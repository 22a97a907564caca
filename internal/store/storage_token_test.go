package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sales-admin/internal/logger"
	"github.com/MKhiriev/sales-admin/internal/mock"
)

func TestTokenStorage_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	sealer := mock.NewMockTokenSealer(ctrl)
	s := NewTokenStorage(kv, sealer, logger.Nop())

	kv.EXPECT().GetValue(gomock.Any(), SessionTokenKey).Return("sealed", nil)
	sealer.EXPECT().Open("sealed").Return("tok", nil)

	got, err := s.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "tok", got)
}

func TestTokenStorage_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	s := NewTokenStorage(kv, mock.NewMockTokenSealer(ctrl), logger.Nop())

	kv.EXPECT().GetValue(gomock.Any(), SessionTokenKey).Return("", ErrValueNotFound)

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenStorage_Get_UnsealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	sealer := mock.NewMockTokenSealer(ctrl)
	s := NewTokenStorage(kv, sealer, logger.Nop())
	unsealErr := errors.New("sealed value is corrupted")

	kv.EXPECT().GetValue(gomock.Any(), SessionTokenKey).Return("garbage", nil)
	sealer.EXPECT().Open("garbage").Return("", unsealErr)

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, unsealErr)
	assert.NotErrorIs(t, err, ErrTokenNotFound)
}

func TestTokenStorage_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	sealer := mock.NewMockTokenSealer(ctrl)
	s := NewTokenStorage(kv, sealer, logger.Nop())

	gomock.InOrder(
		sealer.EXPECT().Seal("tok").Return("sealed", nil),
		kv.EXPECT().PutValue(gomock.Any(), SessionTokenKey, "sealed").Return(nil),
	)

	require.NoError(t, s.Set(context.Background(), "tok"))
}

func TestTokenStorage_Set_SealError(t *testing.T) {
	ctrl := gomock.NewController(t)
	sealer := mock.NewMockTokenSealer(ctrl)
	s := NewTokenStorage(mock.NewMockKeyValueRepository(ctrl), sealer, logger.Nop())

	sealer.EXPECT().Seal("tok").Return("", assert.AnError)

	assert.ErrorIs(t, s.Set(context.Background(), "tok"), assert.AnError)
}

func TestTokenStorage_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock.NewMockKeyValueRepository(ctrl)
	s := NewTokenStorage(kv, mock.NewMockTokenSealer(ctrl), logger.Nop())

	kv.EXPECT().DeleteValue(gomock.Any(), SessionTokenKey).Return(assert.AnError)

	assert.ErrorIs(t, s.Remove(context.Background()), assert.AnError)
}
