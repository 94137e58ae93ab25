package logger

import (
	"crypto/tls"
	"net/http"

	"github.com/getsentry/sentry-go"

	"github.com/zestagio/cinema-booking/internal/buildinfo"
)

const sentryProject = "cinema-booking"

func sentryRelease(version string) string {
	return sentryProject + "@" + version
}

// NewSentryClient reports as cinema-booking@<module version>.
// Certificate checks are skipped outside of prod only.
func NewSentryClient(dsn, env string) (*sentry.Client, error) {
	return sentry.NewClient(sentry.ClientOptions{
		Dsn:              dsn,
		Release:          sentryRelease(buildinfo.Version()),
		Environment:      env,
		ServerName:       sentryProject,
		AttachStacktrace: true,
		HTTPTransport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: env != "prod", //nolint:gosec // self-signed sentry in dev and stage
			},
		},
	})
}
