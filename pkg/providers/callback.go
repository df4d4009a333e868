// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"net/url"
	"regexp"
	"strings"
)

const callbackPrefix = "/webhook/"

// CallbackURL is the public address a provider delivers events for path to.
func CallbackURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + callbackPrefix + strings.TrimLeft(path, "/")
}

type remoteHook struct {
	ID              string
	NotificationURL string
}

// matchCallback picks the remote resource registered for callback.
// An exact URL match wins over one that only agrees on the webhook path.
func matchCallback(hooks []remoteHook, callback, path string) (string, bool) {
	want := strings.TrimRight(callback, "/")
	for _, h := range hooks {
		if strings.TrimRight(h.NotificationURL, "/") == want {
			return h.ID, true
		}
	}

	suffix := callbackPrefix + strings.Trim(path, "/")
	for _, h := range hooks {
		u, err := url.Parse(h.NotificationURL)
		if err != nil {
			continue
		}
		if strings.HasSuffix(strings.TrimRight(u.Path, "/"), suffix) {
			return h.ID, true
		}
	}

	return "", false
}

var botTokenPattern = regexp.MustCompile(`/bot[^/]+/`)

// redact hides credentials embedded in provider URLs before logging.
func redact(raw string) string {
	return botTokenPattern.ReplaceAllString(raw, "/bot***/")
}
