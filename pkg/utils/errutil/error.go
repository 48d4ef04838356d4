package errutil

import (
	"context"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/utils/logging"
)

// tagKeys are goerr values that are also set as Sentry tags so that events
// can be searched by project or run.
var tagKeys = map[string]struct{}{
	"project_id": {},
	"run_id":     {},
	"batch_id":   {},
}

// HandleError logs err and sends it to Sentry. Sending is a no-op when Sentry
// is not configured. nil err is ignored.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("message", msg)
		for k, v := range Values(err) {
			scope.SetExtra(k, v)
			if _, ok := tagKeys[k]; ok {
				scope.SetTag(k, fmt.Sprintf("%v", v))
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}

// Values returns goerr values attached to err with stringified keys.
func Values(err error) map[string]any {
	values := map[string]any{}
	if goErr := goerr.Unwrap(err); goErr != nil {
		for k, v := range goErr.Values() {
			values[fmt.Sprintf("%v", k)] = v
		}
	}
	return values
}
