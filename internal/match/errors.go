package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// Error kinds. Every error returned by this package is a *gqlerror.Error whose Err is one of these,
// so errors.Is can be used to tell them apart.
var (
	ErrNoOperationFound        = errors.New("no operation found")
	ErrNoRootNodesFound        = errors.New("no root nodes found")
	ErrUndefinedFragment       = errors.New("undefined fragment")
	ErrUnexpectedNodeKind      = errors.New("unexpected node kind")
	ErrCyclicFragmentReference = errors.New("cyclic fragment reference")
	ErrEmptyPattern            = errors.New("empty pattern")
)

var errorCodes = map[error]string{
	ErrNoOperationFound:        "NO_OPERATION_FOUND",
	ErrNoRootNodesFound:        "NO_ROOT_NODES_FOUND",
	ErrUndefinedFragment:       "UNDEFINED_FRAGMENT",
	ErrUnexpectedNodeKind:      "UNEXPECTED_NODE_KIND",
	ErrCyclicFragmentReference: "CYCLIC_FRAGMENT_REFERENCE",
	ErrEmptyPattern:            "EMPTY_PATTERN",
}

// ErrorCode returns the extensions.code value used for kind.
func ErrorCode(kind error) string {
	return errorCodes[kind]
}

func inputErrorf(kind error, pos *ast.Position, format string, args ...interface{}) *gqlerror.Error {
	var gErr *gqlerror.Error
	if pos != nil && pos.Src != nil {
		gErr = gqlerror.ErrorPosf(pos, format, args...)
	} else {
		gErr = gqlerror.Errorf(format, args...)
	}
	gErr.Err = kind
	if gErr.Extensions == nil {
		gErr.Extensions = make(map[string]interface{})
	}
	gErr.Extensions["code"] = errorCodes[kind]

	return gErr
}

func noOperationFound() *gqlerror.Error {
	return inputErrorf(ErrNoOperationFound, nil, "no operation found")
}

func noRootNodesFound() *gqlerror.Error {
	return inputErrorf(ErrNoRootNodesFound, nil, "no root nodes found")
}

// NoRootNodesFound is exposed for adapters that build a FieldsTarget themselves.
func NoRootNodesFound() error {
	return noRootNodesFound()
}

func undefinedFragment(spread *ast.FragmentSpread) *gqlerror.Error {
	return inputErrorf(ErrUndefinedFragment, spread.Position, "undefined fragment: %s", spread.Name)
}

func cyclicFragmentReference(spread *ast.FragmentSpread, path []string) *gqlerror.Error {
	return inputErrorf(
		ErrCyclicFragmentReference,
		spread.Position,
		"cyclic fragment reference: %s",
		strings.Join(extendPath(path, spread.Name), " -> "),
	)
}

func unexpectedNodeKind(node interface{}) *gqlerror.Error {
	return inputErrorf(ErrUnexpectedNodeKind, nil, "unexpected node kind: %s", describeNode(node))
}

func emptyPattern() *gqlerror.Error {
	return inputErrorf(ErrEmptyPattern, nil, "pattern selection set is empty")
}

func describeNode(node interface{}) string {
	switch node := node.(type) {
	case nil:
		return "nil"
	case *ast.Field:
		if node == nil {
			return "nil field"
		}
	case *ast.FragmentSpread:
		if node == nil {
			return "nil fragment spread"
		}
	case *ast.InlineFragment:
		if node == nil {
			return "nil inline fragment"
		}
	}
	return fmt.Sprintf("%T", node)
}
