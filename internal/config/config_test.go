package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
env: dev
mongo:
  host: mongo.internal
  port: "27018"
  database: questions
listen:
  port: "8080"
  key: master
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dev", conf.Env)
	assert.Equal(t, "mongodb://mongo.internal:27018", conf.MongoURI())
	assert.Equal(t, "questions", conf.Mongo.Database)
	assert.True(t, conf.Mongo.Enabled)
	assert.Equal(t, "127.0.0.1:8080", conf.ListenAddress())
	assert.Equal(t, "master", conf.Listen.ApiKey)
	assert.Equal(t, 5, conf.Listen.Timeout)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "env: local\n")
	t.Setenv("MONGO_HOST", "db")
	t.Setenv("LISTEN_TIMEOUT", "10")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mongodb://db:27017", conf.MongoURI())
	assert.Equal(t, 10, conf.Listen.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
