//go:build !clause8 && !clause16 && !clause64

package sat

// clauseWord is the unsigned integer width backing ClauseID, matching the
// original implementation's CLAUSE_32 default (see
// original_source/src/types.h). Build with -tags clause8, clause16, or
// clause64 to select a narrower or wider clause-id representation.
type clauseWord = uint32

// maxClauseWord is the largest clause count (and arena index) that fits in
// clauseWord, used to detect parser overflow.
const maxClauseWord = uint64(1<<32 - 1)
