package searchbox

import sberrors "github.com/nonibytes/searchbox/searchbox/errors"

// Re-export error types and functions so callers need a single import.
type Error = sberrors.Error
type ErrorKind = sberrors.ErrorKind

const (
	ErrIO         = sberrors.ErrIO
	ErrSQL        = sberrors.ErrSQL
	ErrSchema     = sberrors.ErrSchema
	ErrQueryParse = sberrors.ErrQueryParse
	ErrNotFound   = sberrors.ErrNotFound
	ErrBackend    = sberrors.ErrBackend
	ErrConfig     = sberrors.ErrConfig
)

func New(kind ErrorKind, msg string) *Error              { return sberrors.New(kind, msg) }
func Wrap(kind ErrorKind, msg string, cause error) *Error { return sberrors.Wrap(kind, msg, cause) }
func IsKind(err error, kind ErrorKind) bool              { return sberrors.IsKind(err, kind) }
