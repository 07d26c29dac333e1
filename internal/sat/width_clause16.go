//go:build clause16

package sat

// clauseWord selects a 16-bit clause-id representation (build tag
// clause16), mirroring the original implementation's CLAUSE_16 option.
type clauseWord = uint16

const maxClauseWord = uint64(1<<16 - 1)
