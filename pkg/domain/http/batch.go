package http

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/damianoneill/bestmatch/pkg/domain/batch"
	"github.com/damianoneill/bestmatch/pkg/domain/logging"
)

//go:generate mockgen -destination=mocks/mock_batch_runner.go -package=mocks github.com/damianoneill/bestmatch/pkg/domain/http BatchRunner

// MatchRoute is where the batch handler is mounted.
const MatchRoute = "/v1/match"

// BatchRunner processes one batch read from in and writes one result line
// per path to out. opts override the configured codec options for this call.
type BatchRunner interface {
	Run(ctx context.Context, in io.Reader, out io.Writer, opts ...batch.Option) error
}

// NewBatchHandler serves one batch per request. The body is capped at
// maxBodyBytes; input layout errors are answered with 400 and oversized
// bodies with 413.
func NewBatchHandler(runner BatchRunner, maxBodyBytes int64, logger logging.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var opts []batch.Option
		if ct := r.Header.Get("Content-Type"); ct != "" {
			format, ok := formatForContentType(ct)
			if !ok {
				http.Error(w, "unsupported content type: "+ct, http.StatusUnsupportedMediaType)
				return
			}
			if format != "" {
				opts = append(opts, batch.WithFormat(format))
			}
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
				return
			}
			http.Error(w, "reading request body", http.StatusBadRequest)
			return
		}

		var out bytes.Buffer
		if err := runner.Run(r.Context(), bytes.NewReader(body), &out, opts...); err != nil {
			if batch.IsInputError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if logger != nil {
				logger.WithContext(r.Context()).ErrorWith("Batch failed", logging.Fields{
					"error": err.Error(),
				})
			}
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = out.WriteTo(w)
	}
}

// formatForContentType maps a request media type to an input format. An
// empty format with ok set means "use the configured format".
func formatForContentType(contentType string) (batch.Format, bool) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", false
	}

	switch mediaType {
	case "text/plain":
		return "", true
	case "application/yaml", "application/x-yaml", "text/yaml":
		return batch.YAMLFormat, true
	default:
		return "", false
	}
}
