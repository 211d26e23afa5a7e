package module

import "reflect"

// PortSet is whatever a module hands out from Ports, usually a struct of interfaces
// and funcs such as the bridge's Router and Capabilities
type PortSet = any

// PortsOf finds a T in m's port set
// The set itself may implement T, otherwise its exported struct fields are searched in order
func PortsOf[T any](m Module) (T, bool) {
	var zero T
	set := m.Ports()
	if set == nil {
		return zero, false
	}
	if v, ok := set.(T); ok {
		return v, true
	}
	rv := reflect.ValueOf(set)
	if rv.Kind() != reflect.Struct {
		return zero, false
	}
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanInterface() {
			continue
		}
		if v, ok := f.Interface().(T); ok {
			return v, true
		}
	}
	return zero, false
}

// MustPortsOf is PortsOf for composition code, where a missing port is a wiring bug
func MustPortsOf[T any](m Module) T {
	v, ok := PortsOf[T](m)
	if !ok {
		panic("module: requested port not found on module " + m.Name())
	}
	return v
}
