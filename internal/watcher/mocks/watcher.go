package mocks

import (
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/dadrus/lexis/internal/watcher"
)

type WatcherMock struct {
	mock.Mock
}

func (m *WatcherMock) Add(path string, cl watcher.ChangeListener) error {
	return m.Called(path, cl).Error(0)
}

type ChangeListenerMock struct {
	mock.Mock
}

func (m *ChangeListenerMock) OnChanged(logger zerolog.Logger, path string) { m.Called(logger, path) }
