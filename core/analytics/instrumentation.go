package analytics

import "go.opentelemetry.io/contrib/bridges/otelslog"

const scopeName = "github.com/voxmeet/meet-core/core/analytics"

var logger = otelslog.NewLogger(scopeName)
