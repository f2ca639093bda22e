package testt

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/tychoish/lazy/assert"
)

type mockTB struct {
	*testing.T

	shouldFail bool
	logs       []string
}

func newMock() *mockTB                    { return &mockTB{T: &testing.T{}} }
func (m *mockTB) Helper()                 {}
func (m *mockTB) Failed() bool            { return m.shouldFail }
func (m *mockTB) Log(args ...any)         { m.logs = append(m.logs, fmt.Sprint(args...)) }
func (m *mockTB) Logf(s string, a ...any) { m.logs = append(m.logs, fmt.Sprintf(s, a...)) }

func TestTools(t *testing.T) {
	t.Run("Log", func(t *testing.T) {
		mock := newMock()
		Log(mock, "hello")
		assert.Equal(t, len(mock.logs), 0)

		mock.shouldFail = true
		Log(mock, "hello")
		assert.Equal(t, len(mock.logs), 1)
		assert.Equal(t, mock.logs[0], "hello")
	})
	t.Run("Logf", func(t *testing.T) {
		mock := newMock()
		Logf(mock, "hello %d", 42)
		assert.Equal(t, len(mock.logs), 0)

		mock.shouldFail = true
		Logf(mock, "hello %d", 42)
		assert.Equal(t, len(mock.logs), 1)
		assert.Equal(t, mock.logs[0], "hello 42")
	})
	t.Run("Logger", func(t *testing.T) {
		mock := newMock()
		logger := Logger(mock)
		assert.Equal(t, logger.GetLevel(), logrus.DebugLevel)

		logger.WithField("size", 3).Debug("materializing")
		assert.Equal(t, len(mock.logs), 1)
		assert.Substring(t, mock.logs[0], "materializing")
		assert.Substring(t, mock.logs[0], "size=3")
	})
}
