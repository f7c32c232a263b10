package match

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Target is either a *DocumentTarget or a *FieldsTarget.
type Target interface {
	isTarget()
}

var _ Target = (*DocumentTarget)(nil)
var _ Target = (*FieldsTarget)(nil)

// DocumentTarget is a whole parsed query document.
type DocumentTarget struct {
	Document      *ast.QueryDocument
	OperationName string // optional, the first operation is used when empty
}

func (target *DocumentTarget) isTarget() {}

// FieldsTarget mirrors what a field resolver sees: the field nodes being resolved
// and the fragments of the operation they belong to.
type FieldsTarget struct {
	RootFields []*ast.Field
	Fragments  ast.FragmentDefinitionList // optional
}

func (target *FieldsTarget) isTarget() {}

type FragmentMap map[string]*ast.FragmentDefinition

// NewFragmentMap indexes fragments by name. The first definition wins on duplicates,
// same as FragmentDefinitionList.ForName.
func NewFragmentMap(fragments ast.FragmentDefinitionList) FragmentMap {
	result := make(FragmentMap, len(fragments))
	for _, fragment := range fragments {
		if fragment == nil {
			continue
		}
		if _, ok := result[fragment.Name]; ok {
			continue
		}
		result[fragment.Name] = fragment
	}
	return result
}

// Root is one target node the pattern is matched against.
type Root struct {
	Name         string // optional
	SelectionSet ast.SelectionSet
}

type Normalized struct {
	Roots     []*Root
	Fragments FragmentMap
}

// Normalize reconciles both target forms into root selection sets and a fragment map.
func Normalize(target Target) (*Normalized, error) {
	switch target := target.(type) {
	case *DocumentTarget:
		if target == nil || target.Document == nil {
			return nil, noOperationFound()
		}
		operation := findOperation(target.Document, target.OperationName)
		if operation == nil {
			return nil, noOperationFound()
		}
		return &Normalized{
			Roots: []*Root{
				{
					Name:         operation.Name,
					SelectionSet: operation.SelectionSet,
				},
			},
			Fragments: NewFragmentMap(target.Document.Fragments),
		}, nil

	case *FieldsTarget:
		if target == nil || target.RootFields == nil {
			return nil, noRootNodesFound()
		}
		roots := make([]*Root, 0, len(target.RootFields))
		for _, field := range target.RootFields {
			if field == nil {
				return nil, unexpectedNodeKind(field)
			}
			roots = append(roots, &Root{
				Name:         responseName(field),
				SelectionSet: field.SelectionSet,
			})
		}
		return &Normalized{
			Roots:     roots,
			Fragments: NewFragmentMap(target.Fragments),
		}, nil

	default:
		return nil, unexpectedNodeKind(target)
	}
}

func findOperation(document *ast.QueryDocument, operationName string) *ast.OperationDefinition {
	if len(document.Operations) == 0 {
		return nil
	}
	if operationName != "" {
		return document.Operations.ForName(operationName)
	}
	return document.Operations[0]
}

func responseName(field *ast.Field) string {
	if field.Alias != "" {
		return field.Alias
	}
	return field.Name
}
