// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"
)

func hmacSHA256(key, payload []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(payload)
	return mac.Sum(nil)
}

// signGitHub produces the X-Hub-Signature-256 value.
func signGitHub(secret string, body []byte) string {
	return "sha256=" + hex.EncodeToString(hmacSHA256([]byte(secret), body))
}

// signStripe produces the Stripe-Signature value over "{timestamp}.{payload}".
func signStripe(secret string, body []byte, now time.Time) string {
	ts := now.Unix()
	content := fmt.Sprintf("%d.%s", ts, body)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(hmacSHA256([]byte(secret), []byte(content))))
}

// signSlack returns the X-Slack-Signature and X-Slack-Request-Timestamp values.
func signSlack(secret string, body []byte, now time.Time) (string, string) {
	ts := strconv.FormatInt(now.Unix(), 10)
	base := "v0:" + ts + ":" + string(body)
	return "v0=" + hex.EncodeToString(hmacSHA256([]byte(secret), []byte(base))), ts
}

// signTeams produces the outgoing webhook Authorization header, the secret is issued base64 encoded.
func signTeams(secret string, body []byte) string {
	key, err := base64.StdEncoding.DecodeString(secret)
	if err != nil {
		key = []byte(secret)
	}
	return "HMAC " + base64.StdEncoding.EncodeToString(hmacSHA256(key, body))
}

// signAirtable produces the X-Airtable-Content-MAC value.
func signAirtable(macSecretBase64 string, body []byte) string {
	key, err := base64.StdEncoding.DecodeString(macSecretBase64)
	if err != nil {
		key = []byte(macSecretBase64)
	}
	return "hmac-sha256=" + hex.EncodeToString(hmacSHA256(key, body))
}
