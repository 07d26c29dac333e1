//go:build clause64

package sat

// clauseWord selects a 64-bit clause-id representation (build tag
// clause64), mirroring the original implementation's CLAUSE_64 option.
type clauseWord = uint64

const maxClauseWord = uint64(1<<63 - 1)
