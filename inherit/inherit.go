// Package inherit simulates single inheritance on top of struct embedding.
//
// A base type embeds [Struct] by value as its first field, and every derived
// type embeds its parent as its first field. After [Init] is called on the
// most derived value, pointers can be cast up and down the chain with [To]
// or [Cast], and methods of the derived type can be reached from the base
// through the generated Invoke{args}_{returns} wrappers:
//
//	type Base struct {
//		inherit.Struct
//	}
//
//	func (b *Base) Name() string { panic("abstract") }
//
//	type Cat struct {
//		Base
//	}
//
//	func (c *Cat) Name() string { return "cat" }
//
//	cat := inherit.Init(&Cat{})
//	base := inherit.To[Base](cat)
//	inherit.Invoke0_1(base.Name, base) // "cat"
package inherit

//go:generate go run github.com/sdboyer/calljen/cmd/calljen generate --config ../calljen.yaml

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"
	"unsafe"
)

// ErrUnInit is the panic value raised when a value is used before Init was
// called on it.
type ErrUnInit struct {
	tp reflect.Type
}

func (er *ErrUnInit) Error() string {
	return fmt.Sprintf("missing call to inherit.Init for %s", er.tp.String())
}

type iStruct interface {
	getType() reflect.Type
	setType(reflect.Type)
	call(f any, args ...any) []reflect.Value
}

// Init records the concrete type of obj, which must be a pointer to a
// struct whose first-field chain ends in [Struct]. It returns obj.
func Init[T iStruct](obj T) T {
	obj.setType(reflect.TypeOf(obj).Elem())
	return obj
}

type typeInfo struct {
	mu       sync.RWMutex
	realType reflect.Type
	methods  map[string]reflect.Method
	casts    map[reflect.Type]bool
}

var typeInfoCache = struct {
	sync.RWMutex
	types map[reflect.Type]*typeInfo
}{
	types: map[reflect.Type]*typeInfo{},
}

func lookupTypeInfo(t reflect.Type) *typeInfo {
	typeInfoCache.RLock()
	info, ok := typeInfoCache.types[t]
	typeInfoCache.RUnlock()
	if ok {
		return info
	}

	typeInfoCache.Lock()
	defer typeInfoCache.Unlock()
	if info, ok = typeInfoCache.types[t]; !ok {
		info = &typeInfo{
			realType: t,
			methods:  map[string]reflect.Method{},
			casts:    map[reflect.Type]bool{},
		}
		typeInfoCache.types[t] = info
	}
	return info
}

// Struct is the root of every inheritance chain. Embed it by value as the
// first field of the base type.
type Struct struct {
	info *typeInfo
}

func (b *Struct) getType() reflect.Type {
	return b.typeInfo().realType
}

func (b *Struct) setType(t reflect.Type) {
	b.info = lookupTypeInfo(t)
}

func (b *Struct) typeInfo() *typeInfo {
	if b.info == nil {
		panic(&ErrUnInit{reflect.TypeOf(b)})
	}
	return b.info
}

// canCast reports whether a value of the receiver's concrete type may be
// viewed as dst, that is, whether dst is the concrete type itself or appears
// in its chain of first fields.
func (ti *typeInfo) canCast(dst reflect.Type) bool {
	if dst == ti.realType {
		return true
	}

	ti.mu.RLock()
	ok, cached := ti.casts[dst]
	ti.mu.RUnlock()
	if cached {
		return ok
	}

	f := ti.realType
	for f != dst && f.Kind() == reflect.Struct && f.NumField() > 0 {
		f = f.Field(0).Type
	}
	ok = f == dst

	ti.mu.Lock()
	ti.casts[dst] = ok
	ti.mu.Unlock()
	return ok
}

// call invokes the method of the concrete type that has the same name as
// the method value f. The receiver is rebuilt from the embedded Struct, which
// shares its address with the concrete value.
func (b *Struct) call(f any, args ...any) []reflect.Value {
	info := b.typeInfo()
	fv := reflect.ValueOf(f)
	fullName := runtime.FuncForPC(fv.Pointer()).Name()

	info.mu.RLock()
	m, ok := info.methods[fullName]
	info.mu.RUnlock()

	if !ok {
		name := fullName[strings.LastIndex(fullName, ".")+1:]
		name = strings.TrimSuffix(name, "-fm")
		m, ok = reflect.PointerTo(info.realType).MethodByName(name)
		if !ok {
			panic(fmt.Errorf("method %s not found in type %s", name, info.realType.String()))
		}

		info.mu.Lock()
		info.methods[fullName] = m
		info.mu.Unlock()
	}

	in := make([]reflect.Value, 0, len(args)+1)
	in = append(in, reflect.NewAt(info.realType, unsafe.Pointer(b)))
	for i, a := range args {
		if a == nil {
			in = append(in, reflect.Zero(m.Type.In(i+1)))
			continue
		}
		in = append(in, reflect.ValueOf(a))
	}
	return m.Func.Call(in)
}

// Cast views s as a *Dst, casting either up or down the inheritance chain.
// ok is false when Dst is not part of the chain of s's concrete type.
func Cast[Dst any](s iStruct) (d *Dst, ok bool) {
	if !lookupTypeInfo(s.getType()).canCast(reflect.TypeOf(d).Elem()) {
		return nil, false
	}
	return UnsafeCast[Dst](s), true
}

// To is like Cast, but returns nil when the cast is not possible.
func To[Dst any](s iStruct) *Dst {
	d, _ := Cast[Dst](s)
	return d
}

// UnsafeCast reinterprets the pointer held by s as a *Dst without any
// checks.
func UnsafeCast[Dst any](s iStruct) *Dst {
	return (*Dst)((*[2]unsafe.Pointer)(unsafe.Pointer(&s))[1])
}

// checkedCast converts a result value back to its static type. A nil
// interface or pointer result converts to the zero value of T instead of
// panicking in the type assertion.
func checkedCast[T any](src reflect.Value) (r T) {
	if v := src.Interface(); v != nil {
		return v.(T)
	}
	return
}
