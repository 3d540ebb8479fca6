package model

import "strings"

// WebhookKey is the path portion of an incoming webhook URL, the part
// after "/services/". It is a credential and must never be logged as-is.
type WebhookKey string

// Masked returns a log-safe form of the key with every path segment
// truncated to its first two characters.
func (k WebhookKey) Masked() string {
	if k == "" {
		return ""
	}

	parts := strings.Split(string(k), "/")
	for i, part := range parts {
		if len(part) > 2 {
			parts[i] = part[:2] + "***"
		}
	}
	return strings.Join(parts, "/")
}
