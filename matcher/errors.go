package matcher

import "github.com/vvakame/querymatch/internal/match"

// Error kinds. Returned errors are *gqlerror.Error values wrapping one of these;
// test with errors.Is. The extensions "code" entry carries ErrorCode(kind).
var (
	ErrNoOperationFound        = match.ErrNoOperationFound
	ErrNoRootNodesFound        = match.ErrNoRootNodesFound
	ErrUndefinedFragment       = match.ErrUndefinedFragment
	ErrUnexpectedNodeKind      = match.ErrUnexpectedNodeKind
	ErrCyclicFragmentReference = match.ErrCyclicFragmentReference
	ErrEmptyPattern            = match.ErrEmptyPattern
)

func ErrorCode(kind error) string {
	return match.ErrorCode(kind)
}
