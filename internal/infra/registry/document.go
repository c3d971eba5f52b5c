package registry

import (
	"bytes"
	"encoding/json"
	"time"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/pkg/errs"
)

const (
	keysMember = "keys"
	// wire format of createdAt/expiresAt, millisecond precision in UTC
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

var emptyArray = json.RawMessage("[]")

// Document is the shared registry JSON. Only the keys member is decoded;
// every other member and every existing key entry is carried through as raw
// JSON so other writers of the document are not disturbed.
type Document struct {
	members map[string]json.RawMessage
	keys    []json.RawMessage
	etag    string
}

type recordDocument struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Plan      string  `json:"plan"`
	Used      bool    `json:"used"`
	HWID      *string `json:"hwid"`
	CreatedAt string  `json:"createdAt"`
	ExpiresAt *string `json:"expiresAt"`
}

// newEmptyDocument is what an empty database (a null root) starts as.
func newEmptyDocument() *Document {
	return &Document{
		members: map[string]json.RawMessage{
			"users":    emptyArray,
			"repos":    emptyArray,
			keysMember: emptyArray,
		},
	}
}

func parseDocument(body []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return newEmptyDocument(), nil
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &members); err != nil {
		return nil, errs.Wrap(err, "registry root is not a JSON object")
	}
	if members == nil {
		members = map[string]json.RawMessage{}
	}

	doc := &Document{members: members}
	rawKeys, ok := members[keysMember]
	if !ok || bytes.Equal(bytes.TrimSpace(rawKeys), []byte("null")) {
		return doc, nil
	}
	if err := json.Unmarshal(rawKeys, &doc.keys); err != nil {
		return nil, errs.Wrap(err, "registry keys member is not an array")
	}
	return doc, nil
}

// Len reports the number of key entries.
func (d *Document) Len() int {
	return len(d.keys)
}

// KeyIDs lists the id of every entry that has one, in document order.
func (d *Document) KeyIDs() []string {
	ids := make([]string, 0, len(d.keys))
	for _, raw := range d.keys {
		var entry struct {
			ID string `json:"id"`
		}
		if json.Unmarshal(raw, &entry) == nil && entry.ID != "" {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

// AppendRecord adds a key entry to the end of the keys array.
func (d *Document) AppendRecord(record *key.Record) error {
	raw, err := json.Marshal(toRecordDocument(record))
	if err != nil {
		return errs.Wrap(err, "encode key record")
	}
	d.keys = append(d.keys, raw)
	return nil
}

// MarshalJSON emits every member value unchanged apart from whitespace.
// HTML characters are left unescaped so other writers' strings survive as written.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.members)+1)
	for name, raw := range d.members {
		out[name] = raw
	}
	rawKeys, err := encodeJSON(d.keysOrEmpty())
	if err != nil {
		return nil, err
	}
	out[keysMember] = rawKeys
	return encodeJSON(out)
}

func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (d *Document) keysOrEmpty() []json.RawMessage {
	if d.keys == nil {
		return []json.RawMessage{}
	}
	return d.keys
}

func toRecordDocument(record *key.Record) recordDocument {
	doc := recordDocument{
		ID:        record.ID(),
		Type:      record.Plan().String(),
		Plan:      record.Plan().String(),
		Used:      record.Used(),
		HWID:      record.HWID(),
		CreatedAt: formatTimestamp(record.CreatedAt()),
	}
	if exp := record.ExpiresAt(); exp != nil {
		s := formatTimestamp(*exp)
		doc.ExpiresAt = &s
	}
	return doc
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
