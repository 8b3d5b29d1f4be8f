package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "compgen.log")
	log, closer, err := New(path, "debug")
	require.NoError(t, err)

	log.WithField("from", "folder").Debug("step transition")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "step transition")
	assert.Contains(t, string(b), "from=folder")
}

func TestNew_DiscardWithoutPath(t *testing.T) {
	log, closer, err := New("", "warn")
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
	assert.NoError(t, closer.Close())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New("", "loud")
	assert.Error(t, err)
}
