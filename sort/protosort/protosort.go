// Package protosort ranks protobuf messages by one of their scalar fields,
// the resulting predicates can be passed to any of the sort package *Func
// functions.
package protosort

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/golang/glog"
	"github.com/sbezverk/sortable/sort"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
)

var (
	// ErrUnknownField error returns when the message has no field with the requested name
	ErrUnknownField = errors.New("unknown field")
	// ErrUnsupportedField error returns when the field is not a singular scalar
	ErrUnsupportedField = errors.New("unsupported field")
	// ErrNoDescriptor error returns when the message descriptor can not be taken from the type
	ErrNoDescriptor = errors.New("no message descriptor")
)

// ByField returns a predicate which ranks messages of type M by the natural
// order of the named field. M must be a generated message type, for
// proto.Message or dynamic messages use ByDescriptor.
func ByField[M proto.Message](name string) (sort.Precedes[M], error) {
	md, err := descriptorOf[M]()
	if err != nil {
		glog.V(5).Infof("failed to get message descriptor with error: %+v", err)
		return nil, err
	}
	return ByDescriptor[M](md, name)
}

// ByDescriptor returns a predicate which ranks messages described by md by the
// natural order of the named field. Only singular scalar fields are accepted,
// false precedes true, NaN precedes any other number and bytes are compared
// lexicographically. A nil message, or a message of another type than md,
// precedes any message of type md.
func ByDescriptor[M proto.Message](md protoreflect.MessageDescriptor, name string) (sort.Precedes[M], error) {
	if md == nil {
		return nil, ErrNoDescriptor
	}
	fd := md.Fields().ByName(protoreflect.Name(name))
	if fd == nil {
		glog.V(5).Infof("message %s has no field %s", md.FullName(), name)
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, md.FullName(), name)
	}
	less, err := fieldLess(fd)
	if err != nil {
		glog.V(5).Infof("field %s can not be used for sorting: %+v", fd.FullName(), err)
		return nil, err
	}
	// The field is looked up again on every message, dynamic messages reject
	// field descriptors which do not belong to their own descriptor.
	value := func(m M) (protoreflect.Value, bool) {
		if isNil(m) {
			return protoreflect.Value{}, false
		}
		rm := m.ProtoReflect()
		if rm.Descriptor().FullName() != md.FullName() {
			return protoreflect.Value{}, false
		}
		f := rm.Descriptor().Fields().ByNumber(fd.Number())
		if f == nil || f.Kind() != fd.Kind() {
			return protoreflect.Value{}, false
		}
		return rm.Get(f), true
	}

	return func(a, b M) bool {
		va, okA := value(a)
		vb, okB := value(b)
		if !okA || !okB {
			return !okA && okB
		}
		return less(va, vb)
	}, nil
}

// MustByField is like ByField but panics when the field can not be used.
func MustByField[M proto.Message](name string) sort.Precedes[M] {
	p, err := ByField[M](name)
	if err != nil {
		panic(err)
	}
	return p
}

// descriptorOf reads the descriptor from the zero value of M, which only
// generated message types support.
func descriptorOf[M proto.Message]() (md protoreflect.MessageDescriptor, err error) {
	var zero M
	if any(zero) == nil {
		return nil, fmt.Errorf("%w: %T is an interface type", ErrNoDescriptor, (*M)(nil))
	}
	defer func() {
		if r := recover(); r != nil {
			md, err = nil, fmt.Errorf("%w: %T", ErrNoDescriptor, zero)
		}
	}()
	md = zero.ProtoReflect().Descriptor()
	if md == nil {
		return nil, fmt.Errorf("%w: %T", ErrNoDescriptor, zero)
	}

	return md, nil
}

func isNil(m proto.Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func fieldLess(fd protoreflect.FieldDescriptor) (func(a, b protoreflect.Value) bool, error) {
	if fd.Cardinality() == protoreflect.Repeated {
		return nil, fmt.Errorf("%w: %s is repeated", ErrUnsupportedField, fd.FullName())
	}
	switch fd.Kind() {
	case protoreflect.BoolKind:
		return func(a, b protoreflect.Value) bool { return !a.Bool() && b.Bool() }, nil
	case protoreflect.EnumKind:
		return func(a, b protoreflect.Value) bool { return a.Enum() < b.Enum() }, nil
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return func(a, b protoreflect.Value) bool { return a.Int() < b.Int() }, nil
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return func(a, b protoreflect.Value) bool { return a.Uint() < b.Uint() }, nil
	case protoreflect.FloatKind, protoreflect.DoubleKind:
		return func(a, b protoreflect.Value) bool {
			x, y := a.Float(), b.Float()
			return x < y || (math.IsNaN(x) && !math.IsNaN(y))
		}, nil
	case protoreflect.StringKind:
		return func(a, b protoreflect.Value) bool { return a.String() < b.String() }, nil
	case protoreflect.BytesKind:
		return func(a, b protoreflect.Value) bool { return bytes.Compare(a.Bytes(), b.Bytes()) < 0 }, nil
	}

	return nil, fmt.Errorf("%w: %s is of kind %s", ErrUnsupportedField, fd.FullName(), fd.Kind())
}
