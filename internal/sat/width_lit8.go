//go:build lit8

package sat

// litWord selects an 8-bit literal representation (build tag lit8),
// mirroring the original implementation's LIT_8 option.
type litWord = int8

const maxLitWord = int64(1<<7 - 1)
