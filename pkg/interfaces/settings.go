package interfaces

import (
	"bytes"
	"context"
	"encoding/json"
)

// SettingsEditor submits a single field of the remote settings record.
// Implementations return a structured failure when the server provides one.
type SettingsEditor interface {
	EditSetting(ctx context.Context, field, value string) (*SettingsResult, error)
}

// SettingsResult captures the server acknowledgement for a settings update.
type SettingsResult struct {
	StatusCode int
	Body       json.RawMessage
}

// Pretty renders the full server response for human inspection. JSON bodies
// are indented; anything else is returned as received.
func (r *SettingsResult) Pretty() string {
	if r == nil || len(bytes.TrimSpace(r.Body)) == 0 {
		return "null"
	}
	var out bytes.Buffer
	if err := json.Indent(&out, r.Body, "", "  "); err != nil {
		return string(r.Body)
	}
	return out.String()
}
