//go:build lit16

package sat

// litWord selects a 16-bit literal representation (build tag lit16),
// mirroring the original implementation's LIT_16 option.
type litWord = int16

const maxLitWord = int64(1<<15 - 1)
