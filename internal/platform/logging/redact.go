package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

var (
	jwtPattern    = regexp.MustCompile(`^eyJ[A-Za-z0-9_-]*\.eyJ[A-Za-z0-9_-]*\.[A-Za-z0-9_-]*$`)
	bearerPattern = regexp.MustCompile(`(?i)^(bearer|basic)\s+.+$`)
)

// redactedFields are attribute and struct field names whose values never
// reach the logs. Editor-only copy notes are in the list alongside the usual
// credentials.
var redactedFields = []string{
	"password",
	"secret",
	"token",
	"api_key",
	"authorization",
	"cookie",
	"nonpublic_notes",
	"NonpublicNotes",
	"nonpublicNotes",
}

// DefaultRedactOptions returns the masq options applied to every json and
// text log line.
func DefaultRedactOptions() []masq.Option {
	opts := make([]masq.Option, 0, len(redactedFields)+4)
	for _, name := range redactedFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	return append(opts,
		masq.WithFieldPrefix("secret"),
		masq.WithFieldPrefix("private"),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(bearerPattern),
	)
}

// NewReplaceAttr returns an slog ReplaceAttr func redacting the defaults
// plus opts.
//
//	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
//	    ReplaceAttr: logging.NewReplaceAttr(masq.WithFieldName("shelfmark")),
//	})
func NewReplaceAttr(opts ...masq.Option) func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(append(DefaultRedactOptions(), opts...)...)
}
