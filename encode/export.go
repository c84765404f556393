package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/openharmony/go-hcs/ir"
)

// Export keys used for nodes which are not plain data.
const (
	RelationKey = "$relation"
	RefKey      = "$ref"
)

// ToData converts node into plain Go values: nodes become yaml.MapSlice in
// child order, arrays []any, references "&path" strings and deletes nil.
func ToData(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NodeType:
		res := yaml.MapSlice{}
		if node.Relation != ir.RelData {
			res = append(res, yaml.MapItem{Key: RelationKey, Value: node.Relation.String()})
			if node.Relation.HasRef() {
				res = append(res, yaml.MapItem{Key: RefKey, Value: node.Ref})
			}
		}
		for _, c := range node.Children {
			v, err := ToData(c)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: c.Name, Value: v})
		}
		return res, nil
	case ir.AttrType:
		v := node.Value()
		if v == nil {
			return nil, fmt.Errorf("%w: attribute %s has no value", ErrEncoding, node.Path())
		}
		return ToData(v)
	case ir.ArrayType:
		res := make([]any, 0, len(node.Children))
		for _, e := range node.Children {
			v, err := ToData(e)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.Int8Type, ir.Int16Type, ir.Int32Type, ir.Int64Type:
		if node.Neg {
			return int64(node.Int), nil
		}
		return node.Int, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.RefType:
		return "&" + node.Ref, nil
	case ir.DeleteType:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %s", ErrEncoding, node.Type)
	}
}

func ToYAML(node *ir.Node, w io.Writer) error {
	v, err := ToData(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func ToJSON(node *ir.Node, w io.Writer) error {
	v, err := ToData(node)
	if err != nil {
		return err
	}
	d, err := json.MarshalIndent(jsonValue{v}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

// jsonValue marshals yaml.MapSlice as a JSON object keeping key order.
type jsonValue struct{ v any }

func (j jsonValue) MarshalJSON() ([]byte, error) {
	switch x := j.v.(type) {
	case yaml.MapSlice:
		buf := bytes.NewBufferString("{")
		for i, item := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(fmt.Sprint(item.Key))
			if err != nil {
				return nil, err
			}
			v, err := json.Marshal(jsonValue{item.Value})
			if err != nil {
				return nil, err
			}
			buf.Write(k)
			buf.WriteByte(':')
			buf.Write(v)
		}
		buf.WriteByte('}')
		return buf.Bytes(), nil
	case []any:
		res := make([]jsonValue, len(x))
		for i := range x {
			res[i] = jsonValue{x[i]}
		}
		return json.Marshal(res)
	default:
		return json.Marshal(x)
	}
}
