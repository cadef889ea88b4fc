package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		env      map[string]string
		expected Config
	}{
		{
			name: "all variables set",
			env: map[string]string{
				"MYSQL_HOST":     "db.internal:3306",
				"MYSQL_USER":     "wp",
				"MYSQL_PASSWORD": "secret",
				"MYSQL_DATABASE": "wordpress",
				"MONGO_URI":      "mongodb://localhost:27017/blog",
			},
			expected: Config{
				MySQL: MySQLConfig{
					Host:     "db.internal:3306",
					User:     "wp",
					Password: "secret",
					Database: "wordpress",
				},
				MongoURI: "mongodb://localhost:27017/blog",
			},
		},
		{
			name:     "missing variables stay empty",
			env:      map[string]string{},
			expected: Config{},
		},
		{
			name: "values are not trimmed",
			env: map[string]string{
				"MYSQL_PASSWORD": " spaced ",
			},
			expected: Config{
				MySQL: MySQLConfig{Password: " spaced "},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{"MYSQL_HOST", "MYSQL_USER", "MYSQL_PASSWORD", "MYSQL_DATABASE", "MONGO_URI"} {
				t.Setenv(key, tc.env[key])
			}

			cfg := Load()
			assert.Equal(t, tc.expected, *cfg)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	t.Run("no env file", func(t *testing.T) {
		path, err := LoadEnv()
		assert.NoError(t, err)
		assert.Empty(t, path)
	})

	t.Run("env file is loaded without overriding", func(t *testing.T) {
		t.Setenv("MYSQL_USER", "from-shell")
		t.Setenv("MYSQL_DATABASE", "")
		os.Unsetenv("MYSQL_DATABASE")

		content := "MYSQL_USER=from-file\nMYSQL_DATABASE=wordpress\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o644))

		path, err := LoadEnv()
		require.NoError(t, err)
		assert.Equal(t, ".env", path)
		assert.Equal(t, "from-shell", os.Getenv("MYSQL_USER"))
		assert.Equal(t, "wordpress", os.Getenv("MYSQL_DATABASE"))
	})

	t.Run("unparsable env file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MONGO_URI='unterminated\n"), 0o644))

		_, err := LoadEnv()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "error loading .env file")
	})
}

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.NotEmpty(t, root)

	_, err = os.Stat(filepath.Join(root, "go.mod"))
	assert.NoError(t, err, "go.mod should exist in project root")
}
