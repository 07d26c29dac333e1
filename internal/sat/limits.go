package sat

// MaxVar returns the largest variable id representable by the configured
// literal width (spec §6: "literal and clause-count types are
// configurable by build-time size").
func MaxVar() int64 {
	return maxLitWord
}

// MaxClauseCount returns the largest clause count (and implicitly the
// largest clause id) representable by the configured clause-id width.
func MaxClauseCount() int64 {
	if maxClauseWord > uint64(1<<62) {
		return 1<<62 - 1 // clamp so the int64 return value never overflows.
	}
	return int64(maxClauseWord)
}
