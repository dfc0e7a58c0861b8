// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_ISSUER", "https://id.example.com")

	cfg, err := ParseFlags([]string{"-env-file", "testdata/missing.env"})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "https://id.example.com", cfg.JWTIssuer)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-jwt-secret", "s1", "-env-file", "testdata/missing.env"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "s1", cfg.JWTSecret)
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "file:test.db")
	t.Setenv("JWT_SECRET", "s1")

	cfg, err := ParseFlags([]string{"-env-file", "testdata/missing.env"})
	require.NoError(t, err)

	assert.Equal(t, 3318, cfg.Port)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
}

func TestParseFlags_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DATABASE_URL=file:dotenv.db\nJWT_SECRET=from-file\n"), 0o600))

	// Restored after the test; godotenv sets it for real
	t.Setenv("DATABASE_URL", "")
	os.Unsetenv("DATABASE_URL")

	// Real environment wins over the file
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := ParseFlags([]string{"-env-file", path})
	require.NoError(t, err)

	assert.Equal(t, "file:dotenv.db", cfg.DatabaseURL)
	assert.Equal(t, "from-env", cfg.JWTSecret)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{
			name: "missing database url",
			env:  map[string]string{"JWT_SECRET": "s1"},
		},
		{
			name: "missing jwt secret",
			env:  map[string]string{"DATABASE_URL": "file:test.db"},
		},
		{
			name: "unknown database type",
			env:  map[string]string{"DATABASE_URL": "file:test.db", "JWT_SECRET": "s1"},
			args: []string{"-t", "mysql"},
		},
		{
			name: "invalid port",
			env:  map[string]string{"PORT": "not-a-port", "DATABASE_URL": "file:test.db", "JWT_SECRET": "s1"},
		},
		{
			name: "unknown flag",
			env:  map[string]string{"DATABASE_URL": "file:test.db", "JWT_SECRET": "s1"},
			args: []string{"-nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "JWT_SECRET", "JWT_ISSUER"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			args := append([]string{"-env-file", "testdata/missing.env"}, tt.args...)
			_, err := ParseFlags(args)
			assert.Error(t, err)
		})
	}
}
