package match

import (
	"github.com/vektah/gqlparser/v2/ast"
)

// Pattern is the required shape: a selection set plus the fragments its spreads refer to.
type Pattern struct {
	SelectionSet ast.SelectionSet
	Fragments    FragmentMap // optional
}

// PatternFromDocument takes the selection set of the named operation, or the first one when
// operationName is empty.
func PatternFromDocument(document *ast.QueryDocument, operationName string) (*Pattern, error) {
	if document == nil {
		return nil, noOperationFound()
	}
	operation := findOperation(document, operationName)
	if operation == nil {
		return nil, noOperationFound()
	}

	return &Pattern{
		SelectionSet: operation.SelectionSet,
		Fragments:    NewFragmentMap(document.Fragments),
	}, nil
}

// requirement is every pattern occurrence of one field name, merged.
type requirement struct {
	name  string
	parts []scope
}

func (req *requirement) isLeaf() bool {
	for _, part := range req.parts {
		if len(part.selectionSet) != 0 {
			return false
		}
	}
	return true
}

// Go maps don't keep insertion order, so names are tracked separately.
type requirements struct {
	names  []string
	byName map[string]*requirement
}

// add merges every occurrence of a field name into one requirement whose children are the union
// of the occurrences' children, so { top { nested } top { other } } needs a single top branch
// that has both nested and other.
func (reqs *requirements) add(field *ast.Field, path []string) {
	if reqs.byName == nil {
		reqs.byName = make(map[string]*requirement)
	}
	req, ok := reqs.byName[field.Name]
	if !ok {
		req = &requirement{name: field.Name}
		reqs.byName[field.Name] = req
		reqs.names = append(reqs.names, field.Name)
	}
	req.parts = append(req.parts, scope{selectionSet: field.SelectionSet, path: path})
}

func (reqs *requirements) list() []*requirement {
	result := make([]*requirement, 0, len(reqs.names))
	for _, name := range reqs.names {
		result = append(result, reqs.byName[name])
	}
	return result
}

// collectRequirements flattens one level of the pattern, expanding its fragments in place.
func (r *resolver) collectRequirements(selectionSet ast.SelectionSet, path []string, reqs *requirements) error {
	for _, selection := range selectionSet {
		switch selection := selection.(type) {
		case *ast.Field:
			if selection == nil {
				return unexpectedNodeKind(selection)
			}
			reqs.add(selection, path)

		case *ast.FragmentSpread:
			if selection == nil {
				return unexpectedNodeKind(selection)
			}
			fragment, err := r.enter(selection, path)
			if err != nil {
				return err
			}
			err = r.collectRequirements(fragment.SelectionSet, extendPath(path, selection.Name), reqs)
			if err != nil {
				return err
			}

		case *ast.InlineFragment:
			if selection == nil {
				return unexpectedNodeKind(selection)
			}
			err := r.collectRequirements(selection.SelectionSet, path, reqs)
			if err != nil {
				return err
			}

		default:
			return unexpectedNodeKind(selection)
		}
	}

	return nil
}
