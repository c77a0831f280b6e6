package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/o3as_viz_go/internal/o3as"
)

// ParseSelection decodes the model group state. Both YAML and JSON are
// accepted, in either of two shapes:
//
//	modelGroups: {<id>: {name, isVisible, visibleSV: {...}, models: {<model>: {isVisible, mean, ...}}}}
//	groups: [{id, name, isVisible, visibleSV: {...}, models: [{name, isVisible, mean, ...}]}]
//
// Mapping order is kept, so legend and colour order follow the document.
func ParseSelection(r io.Reader) (*Selection, error) {
	var sel Selection
	if err := yaml.NewDecoder(r).Decode(&sel); err != nil {
		if err == io.EOF {
			return &Selection{Groups: make([]Group, 0)}, nil
		}
		return nil, fmt.Errorf("failed to decode selection state: %w", err)
	}
	return &sel, nil
}

// ParseSelectionBytes is ParseSelection for an in-memory document.
func ParseSelectionBytes(data []byte) (*Selection, error) {
	return ParseSelection(bytes.NewReader(data))
}

// ParseSelectionFile reads and decodes a selection state stored at path.
func ParseSelectionFile(path string) (*Selection, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open selection file: %w", err)
	}
	defer file.Close()

	return ParseSelection(file)
}

func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: selection state must be a mapping", node.Line)
	}
	s.Groups = make([]Group, 0)

	return eachPair(node, func(key string, value *yaml.Node) error {
		switch key {
		case "modelGroups":
			if value.Kind != yaml.MappingNode {
				return fmt.Errorf("line %d: modelGroups must be a mapping", value.Line)
			}
			return eachPair(value, func(id string, groupNode *yaml.Node) error {
				group, err := decodeGroup(groupNode)
				if err != nil {
					return fmt.Errorf("group %q: %w", id, err)
				}
				group.ID = id
				s.Groups = append(s.Groups, group)
				return nil
			})
		case "groups":
			if value.Kind != yaml.SequenceNode {
				return fmt.Errorf("line %d: groups must be a sequence", value.Line)
			}
			for i, groupNode := range value.Content {
				group, err := decodeGroup(groupNode)
				if err != nil {
					return fmt.Errorf("group %d: %w", i, err)
				}
				if group.ID == "" {
					group.ID = fmt.Sprint(i)
				}
				s.Groups = append(s.Groups, group)
			}
		}
		return nil
	})
}

func decodeGroup(node *yaml.Node) (Group, error) {
	group := Group{
		VisibleSV: make(map[o3as.StatKind]bool),
		Models:    make([]ModelSelection, 0),
	}
	if node.Kind != yaml.MappingNode {
		return group, fmt.Errorf("line %d: group must be a mapping", node.Line)
	}

	err := eachPair(node, func(key string, value *yaml.Node) error {
		switch key {
		case "id":
			return value.Decode(&group.ID)
		case "name":
			return value.Decode(&group.Name)
		case "isVisible":
			return value.Decode(&group.IsVisible)
		case "visibleSV":
			return eachPair(value, func(sv string, flag *yaml.Node) error {
				var visible bool
				if err := flag.Decode(&visible); err != nil {
					return err
				}
				group.VisibleSV[o3as.StatKind(sv)] = visible
				return nil
			})
		case "models":
			switch value.Kind {
			case yaml.MappingNode:
				return eachPair(value, func(name string, modelNode *yaml.Node) error {
					model, err := decodeModel(modelNode)
					if err != nil {
						return fmt.Errorf("model %q: %w", name, err)
					}
					model.Name = name
					group.Models = append(group.Models, model)
					return nil
				})
			case yaml.SequenceNode:
				for _, modelNode := range value.Content {
					model, err := decodeModel(modelNode)
					if err != nil {
						return err
					}
					if model.Name == "" {
						return fmt.Errorf("line %d: model without name", modelNode.Line)
					}
					group.Models = append(group.Models, model)
				}
				return nil
			default:
				return fmt.Errorf("line %d: models must be a mapping or a sequence", value.Line)
			}
		}
		return nil
	})
	return group, err
}

func decodeModel(node *yaml.Node) (ModelSelection, error) {
	model := ModelSelection{Include: make(map[o3as.StatKind]bool)}
	if node.Kind != yaml.MappingNode {
		return model, fmt.Errorf("line %d: model must be a mapping", node.Line)
	}

	err := eachPair(node, func(key string, value *yaml.Node) error {
		switch key {
		case "name":
			return value.Decode(&model.Name)
		case "isVisible":
			return value.Decode(&model.IsVisible)
		default:
			var included bool
			if err := value.Decode(&included); err != nil {
				// unknown non-boolean keys carry no inclusion information
				return nil
			}
			model.Include[o3as.StatKind(key)] = included
		}
		return nil
	})
	return model, err
}

func eachPair(node *yaml.Node, fn func(key string, value *yaml.Node) error) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
