package model

// PostRequest describes one delivery: what to say, where to send it, and
// which profile supplies the defaults.
type PostRequest struct {
	Key       WebhookKey
	Text      string
	Channel   string
	Username  string
	IconEmoji string
	Profile   string

	// Attachment fields; a non-empty Title requests an attachment.
	Title     string
	Color     Color
	TitleLink string
	Pretext   string
	Fallback  string
	Fields    []Field

	DryRun bool
}

// HasAttachmentFields reports whether any field that only makes sense on
// an attachment is set
func (r *PostRequest) HasAttachmentFields() bool {
	return r.Color != "" || r.TitleLink != "" || r.Pretext != "" ||
		r.Fallback != "" || len(r.Fields) > 0
}

// PostResult is the outcome of executing a PostRequest
type PostResult struct {
	Delivered bool
	DryRun    bool
	Channel   string
	Payload   []byte
}
