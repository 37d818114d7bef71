package parse

import (
	"github.com/vdf-format/vdf/ast"
	"github.com/vdf-format/vdf/kv"
)

// Reduce folds the key value pairs of c into a data object, the same way
// Parse does. It can be used on trees that were modified after parsing.
func Reduce(c ast.Container) *kv.Object {
	res := kv.NewObject()
	for _, n := range *c.ChildNodes() {
		p, ok := n.(*ast.KeyValue)
		if !ok || p.Key == nil || p.Value == nil {
			continue
		}
		res.Append(p.Key.Value, ReduceValue(p.Value))
	}
	return res
}

func ReduceValue(v ast.Value) kv.Value {
	switch x := v.(type) {
	case *ast.String:
		return kv.String(x.Value)
	case *ast.Number:
		return kv.Number(x.Value)
	case *ast.Object:
		return Reduce(x)
	}
	return nil
}
