package credential

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func fullEnv() map[string]string {
	return map[string]string{
		EnvAccessToken: "token",
		EnvSession:     "session",
		EnvXSRFToken:   "xsrf",
		EnvCFClearance: "clearance",
	}
}

func TestLoadFrom(t *testing.T) {
	creds, err := LoadFrom(envLookup(fullEnv()))
	require.NoError(t, err)
	assert.Equal(t, "token", creds.AccessToken)
	assert.Equal(t, "session", creds.Session)
	assert.Equal(t, "xsrf", creds.XSRFToken)
	assert.Equal(t, "clearance", creds.CFClearance)
}

func TestLoadFromMissingKey(t *testing.T) {
	for _, key := range []string{EnvAccessToken, EnvSession, EnvXSRFToken, EnvCFClearance} {
		t.Run(key, func(t *testing.T) {
			env := fullEnv()
			delete(env, key)

			_, err := LoadFrom(envLookup(env))
			require.Error(t, err)

			var missing *MissingCredentialError
			require.True(t, errors.As(err, &missing))
			assert.Equal(t, key, missing.Key)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestLoadFromEmptyValue(t *testing.T) {
	env := fullEnv()
	env[EnvXSRFToken] = ""

	_, err := LoadFrom(envLookup(env))
	var missing *MissingCredentialError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, EnvXSRFToken, missing.Key)
}

func TestLoadReadsEnvironment(t *testing.T) {
	for k, v := range fullEnv() {
		t.Setenv(k, v)
	}
	creds, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "clearance", creds.CFClearance)
}

func TestCookies(t *testing.T) {
	creds, err := LoadFrom(envLookup(fullEnv()))
	require.NoError(t, err)

	cookies := creds.Cookies()
	require.Len(t, cookies, 4)

	names := make([]string, 0, len(cookies))
	for _, c := range cookies {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"accessToken", "me_truyen_chu_session", "XSRF-TOKEN", "cf_clearance"}, names)
	assert.Equal(t, "xsrf", cookies[2].Value)
}
