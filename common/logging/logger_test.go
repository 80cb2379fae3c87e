package logging

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	entry := &logrus.Entry{
		Logger:  logrus.New(),
		Time:    time.Date(2023, 1, 2, 10, 0, 0, 0, loc),
		Level:   logrus.InfoLevel,
		Message: "hello",
		Data:    logrus.Fields{},
	}

	b, err := NewFormatter(false, true).Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(b), "2023-01-02 05:00:00.000 Z")
	assert.Contains(t, string(b), `"msg":"hello"`)
}

func TestSetupRejectsBadLevel(t *testing.T) {
	assert.Error(t, Setup("-", false, false, "loud"))
}

func TestSetupDefaultsToInfo(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetOutput(logrus.StandardLogger().Out)

	require.NoError(t, Setup("", false, false, ""))
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	logrus.Debug("hidden")
	assert.Empty(t, buf.String())
}
