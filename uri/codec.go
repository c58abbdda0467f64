package uri

import (
	"encoding/json"
	"strings"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"
)

// ParamCodec serializes composite parameter values (lists, maps, structs) to text and back.
type ParamCodec interface {
	Encode(v any) (string, error)
	Decode(s string, dst any) error
}

// JSONCodec encodes parameter values as compact JSON.
type JSONCodec struct{}

func (JSONCodec) Encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return string(b), nil
}

func (JSONCodec) Decode(s string, dst any) error {
	return errtrace.Wrap(json.Unmarshal([]byte(s), dst))
}

// YAMLCodec encodes parameter values as YAML documents.
// Flow style keeps short values on a single line.
type YAMLCodec struct {
	Flow bool
}

func (c YAMLCodec) Encode(v any) (string, error) {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return "", errtrace.Wrap(err)
	}
	if c.Flow {
		setFlowStyle(&node)
	}
	b, err := yaml.Marshal(&node)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

func setFlowStyle(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		setFlowStyle(c)
	}
}

func (YAMLCodec) Decode(s string, dst any) error {
	return errtrace.Wrap(yaml.Unmarshal([]byte(s), dst))
}
