package identity

import "go/types"

// ReceiverKind tells how a function binds its receiver.
type ReceiverKind int

const (
	// ReceiverNone is a plain package-level function.
	ReceiverNone ReceiverKind = iota
	// ReceiverInstance is a method: recv.Method(args).
	ReceiverInstance
	// ReceiverExtension is a package-level function whose first parameter
	// plays the receiver: Func(recv, args).
	ReceiverExtension
)

func (k ReceiverKind) String() string {
	switch k {
	case ReceiverInstance:
		return "instance"
	case ReceiverExtension:
		return "extension"
	default:
		return "none"
	}
}

// Shape is the parameter shape of a function. Params excludes the receiver.
// For variadic functions the last entry of Params is a slice type.
type Shape struct {
	Receiver ReceiverKind
	RecvType types.Type
	Params   []types.Type
	Variadic bool
}

// Arity returns the number of formal parameters, receiver excluded.
func (s Shape) Arity() int {
	return len(s.Params)
}

// First returns the first formal parameter type, or nil.
func (s Shape) First() types.Type {
	if len(s.Params) == 0 {
		return nil
	}

	return s.Params[0]
}

// ShapeOf returns the declared shape of fn: instance for methods, none otherwise.
func ShapeOf(fn *types.Func) Shape {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return Shape{}
	}

	shape := Shape{
		Params:   paramTypes(sig.Params(), 0),
		Variadic: sig.Variadic(),
	}

	if recv := sig.Recv(); recv != nil {
		shape.Receiver = ReceiverInstance
		shape.RecvType = recv.Type()
	}

	return shape
}

// ExtensionShapeOf reads fn as an extension function: its first parameter is
// the receiver. Methods, functions without parameters and functions whose only
// parameter is variadic are not extension-shaped.
func ExtensionShapeOf(fn *types.Func) (Shape, bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() != nil {
		return Shape{}, false
	}

	params := sig.Params()
	if params.Len() == 0 || (params.Len() == 1 && sig.Variadic()) {
		return Shape{}, false
	}

	return Shape{
		Receiver: ReceiverExtension,
		RecvType: params.At(0).Type(),
		Params:   paramTypes(params, 1),
		Variadic: sig.Variadic(),
	}, true
}

func paramTypes(params *types.Tuple, from int) []types.Type {
	if params.Len() <= from {
		return nil
	}

	out := make([]types.Type, 0, params.Len()-from)
	for i := from; i < params.Len(); i++ {
		out = append(out, params.At(i).Type())
	}

	return out
}
