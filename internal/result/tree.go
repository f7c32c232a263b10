package result

import (
	"github.com/go-logr/logr"
	"github.com/goccy/go-yaml"
)

var _ logr.Marshaler = (*Tree)(nil)
var _ yaml.InterfaceMarshaler = (*Tree)(nil)

// Tree is the outcome of matching one pattern selection set against one target node.
// Entries keep the order in which field names first appear in the pattern.
type Tree struct {
	Name    string // optional, set on root trees only
	Entries []*Entry
}

// Entry records, for one required field name, whether it was satisfied as a leaf
// or which candidate branches the target offered for it.
type Entry struct {
	Name     string
	Leaf     bool
	Branches []*Branch // optional
}

// Branch is one candidate target field for an Entry.
type Branch struct {
	ResponseName string // display only
	Tree         *Tree
}

func (tree *Tree) ForName(name string) *Entry {
	if tree == nil {
		return nil
	}
	for _, entry := range tree.Entries {
		if entry.Name == name {
			return entry
		}
	}
	return nil
}

func (tree *Tree) MarshalLog() interface{} {
	if tree == nil {
		return nil
	}
	result := make(map[string]interface{}, len(tree.Entries))
	for _, entry := range tree.Entries {
		result[entry.Name] = entry.marshalLog()
	}
	return result
}

func (entry *Entry) marshalLog() interface{} {
	if entry.Leaf {
		return "leaf"
	}
	branches := make([]interface{}, 0, len(entry.Branches))
	for _, branch := range entry.Branches {
		branches = append(branches, map[string]interface{}{
			"as":     branch.ResponseName,
			"dead":   IsDead(branch.Tree),
			"fields": branch.Tree.MarshalLog(),
		})
	}
	return branches
}

// MarshalYAML keeps pattern order by emitting MapSlices instead of maps.
func (tree *Tree) MarshalYAML() (interface{}, error) {
	return tree.marshalObject(), nil
}

func (tree *Tree) marshalObject() yaml.MapSlice {
	if tree == nil {
		return yaml.MapSlice{}
	}
	result := make(yaml.MapSlice, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		var value interface{}
		if entry.Leaf {
			value = "leaf"
		} else {
			branches := make([]yaml.MapSlice, 0, len(entry.Branches))
			for _, branch := range entry.Branches {
				branches = append(branches, yaml.MapSlice{
					{Key: "as", Value: branch.ResponseName},
					{Key: "dead", Value: IsDead(branch.Tree)},
					{Key: "fields", Value: branch.Tree.marshalObject()},
				})
			}
			value = branches
		}
		result = append(result, yaml.MapItem{Key: entry.Name, Value: value})
	}
	return result
}
