package credential

import (
	"fmt"
	"os"

	"metruyencv-downloader/browser"
)

const (
	EnvAccessToken = "accessToken"
	EnvSession     = "me_truyen_chu_session"
	EnvXSRFToken   = "XSRF_TOKEN"
	EnvCFClearance = "cf_clearance"
)

// Credentials are the session tokens that make the browser look logged in.
type Credentials struct {
	AccessToken string
	Session     string
	XSRFToken   string
	CFClearance string
}

type MissingCredentialError struct {
	Key string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing environment variable: %s", e.Key)
}

// Load reads the credentials from the process environment.
func Load() (*Credentials, error) {
	return LoadFrom(os.LookupEnv)
}

func LoadFrom(lookup func(key string) (string, bool)) (*Credentials, error) {
	c := &Credentials{}
	fields := []struct {
		key string
		dst *string
	}{
		{EnvAccessToken, &c.AccessToken},
		{EnvSession, &c.Session},
		{EnvXSRFToken, &c.XSRFToken},
		{EnvCFClearance, &c.CFClearance},
	}
	for _, f := range fields {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			return nil, &MissingCredentialError{Key: f.key}
		}
		*f.dst = v
	}
	return c, nil
}

// Cookies returns the credentials under the cookie names the site expects.
func (c *Credentials) Cookies() []browser.Cookie {
	return []browser.Cookie{
		{Name: "accessToken", Value: c.AccessToken},
		{Name: "me_truyen_chu_session", Value: c.Session},
		{Name: "XSRF-TOKEN", Value: c.XSRFToken},
		{Name: "cf_clearance", Value: c.CFClearance},
	}
}
