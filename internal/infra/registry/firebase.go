package registry

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"vander-key-store/internal/domain/key"
	"vander-key-store/internal/infra"
	"vander-key-store/internal/pkg/config"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const (
	headerETagRequest = "X-Firebase-ETag"
	headerETag        = "ETag"
	headerIfMatch     = "if-match"

	retryBaseDelay = 100 * time.Millisecond
)

// FirebaseRegistry appends issued keys to a Firebase Realtime Database
// document through its REST API. The whole document is read and written back
// on every append.
//
// In overwrite mode a concurrent writer between the read and the write is
// silently lost. Conditional mode sends the read ETag back as if-match and
// repeats the cycle when the server answers 412.
type FirebaseRegistry struct {
	client      *resty.Client
	url         string
	conditional bool
	maxRetries  uint64
	logger      *slog.Logger
}

func NewFirebaseRegistry(cfg config.RegistryConfig, logger *slog.Logger) *FirebaseRegistry {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &FirebaseRegistry{
		client:      client,
		url:         cfg.URL,
		conditional: cfg.WriteMode == config.RegistryConditional,
		maxRetries:  cfg.MaxRetries,
		logger:      logger,
	}
}

func (r *FirebaseRegistry) Fetch(ctx context.Context) (*Document, error) {
	req := r.client.R().SetContext(ctx)
	if r.conditional {
		req.SetHeader(headerETagRequest, "true")
	}

	resp, err := req.Get(r.url)
	if err != nil {
		return nil, infra.NewErr(infra.KindRemoteFailure, "registry read", err)
	}
	if resp.IsError() {
		return nil, infra.NewErr(infra.KindRemoteFailure, "registry read returned "+resp.Status(), nil)
	}

	doc, err := parseDocument(resp.Body())
	if err != nil {
		return nil, infra.NewErr(infra.KindRemoteFailure, "registry decode", err)
	}
	doc.etag = resp.Header().Get(headerETag)
	return doc, nil
}

// Write replaces the whole document. A document fetched in conditional mode
// is only written if nobody changed it since; otherwise KindConflict.
func (r *FirebaseRegistry) Write(ctx context.Context, doc *Document) error {
	// json.Marshal would re-escape HTML inside preserved members
	body, err := doc.MarshalJSON()
	if err != nil {
		return infra.NewErr(infra.KindRemoteFailure, "registry encode", err)
	}

	req := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if r.conditional && doc.etag != "" {
		req.SetHeader(headerIfMatch, doc.etag)
	}

	resp, err := req.Put(r.url)
	if err != nil {
		return infra.NewErr(infra.KindRemoteFailure, "registry write", err)
	}
	if resp.StatusCode() == http.StatusPreconditionFailed {
		return infra.NewErr(infra.KindConflict, "registry changed since read", nil)
	}
	if resp.IsError() {
		return infra.NewErr(infra.KindRemoteFailure, "registry write returned "+resp.Status(), nil)
	}
	return nil
}

func (r *FirebaseRegistry) Append(ctx context.Context, record *key.Record) error {
	if !r.conditional {
		return r.appendOnce(ctx, record)
	}

	attempt := 0
	backoff := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(retryBaseDelay))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := r.appendOnce(ctx, record)
		if infra.IsKind(err, infra.KindConflict) {
			r.logger.WarnContext(ctx, "registry write conflict, retrying",
				"key", record.ID(),
				"attempt", attempt,
			)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (r *FirebaseRegistry) appendOnce(ctx context.Context, record *key.Record) error {
	doc, err := r.Fetch(ctx)
	if err != nil {
		return err
	}
	if err := doc.AppendRecord(record); err != nil {
		return infra.NewErr(infra.KindRemoteFailure, "registry append", err)
	}
	if err := r.Write(ctx, doc); err != nil {
		return err
	}
	r.logger.DebugContext(ctx, "registry document written", "key", record.ID(), "keys", doc.Len())
	return nil
}
