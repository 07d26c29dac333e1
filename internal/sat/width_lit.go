//go:build !lit8 && !lit16 && !lit64

package sat

// litWord is the signed integer width backing Literal and Var. This is the
// default 32-bit width, matching the original implementation's LIT_32
// default (see original_source/src/types.h). Build with -tags lit8, lit16,
// or lit64 to select a narrower or wider literal representation.
type litWord = int32

// maxLitWord is the largest variable id (and literal magnitude) that fits
// in litWord, used to detect parser overflow.
const maxLitWord = int64(1<<31 - 1)
