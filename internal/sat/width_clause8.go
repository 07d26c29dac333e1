//go:build clause8

package sat

// clauseWord selects an 8-bit clause-id representation (build tag clause8),
// mirroring the original implementation's CLAUSE_8 option.
type clauseWord = uint8

const maxClauseWord = uint64(1<<8 - 1)
