package dedupe

// Package dedupe provides the shared singleflight group used to collapse
// concurrent auto-advance triggers. The group is keyed by session id plus
// turn serial, so two timers firing for the same turn run the resolution
// once while the second caller waits for the result.

import "golang.org/x/sync/singleflight"

// AdvanceGroup deduplicates automatic turn resolutions keyed by
// "<session-id>:<turn-serial>".
var AdvanceGroup singleflight.Group
