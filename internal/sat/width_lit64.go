//go:build lit64

package sat

// litWord selects a 64-bit literal representation (build tag lit64),
// mirroring the original implementation's LIT_64 option.
type litWord = int64

const maxLitWord = int64(1<<63 - 1)
