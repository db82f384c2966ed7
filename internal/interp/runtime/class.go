package runtime

import "fmt"

// Class is a named collection of methods with an optional single
// superclass. A method table entry named "init" is the constructor
// (spec.md §3).
type Class struct {
	Name       string
	Methods    map[string]*Function
	Superclass *Class
}

func (*Class) TypeName() string { return "Clazz" }
func (c *Class) Render() string { return fmt.Sprintf("Clazz '%s'", c.Name) }

// FindMethod looks up name on c, walking up the superclass chain. It
// returns nil if no class in the chain declares the method.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// field is one (name, value) entry in an Instance's field list. Field
// storage is an ordered slice, not a map, so insertion order is preserved
// and lookup/assignment are linear, exactly as spec.md §3 requires.
type field struct {
	Name  string
	Value Value
}

// Instance is a heap-allocated class instance: a class reference plus its
// own mutable field list. Instances own their fields; the class is shared
// by reference across every instance (spec.md §3).
type Instance struct {
	Class  *Class
	fields []field
}

// NewInstance allocates an Instance of class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class}
}

func (i *Instance) TypeName() string { return i.Class.Name }
func (i *Instance) Render() string {
	return fmt.Sprintf("Clazz instance '%s'", i.Class.Name)
}

// GetField looks up a field by name with linear search.
func (i *Instance) GetField(name string) (Value, bool) {
	for _, f := range i.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// SetField overwrites an existing field of the given name, or appends a
// new one if none exists yet.
func (i *Instance) SetField(name string, v Value) {
	for idx := range i.fields {
		if i.fields[idx].Name == name {
			i.fields[idx].Value = v
			return
		}
	}
	i.fields = append(i.fields, field{Name: name, Value: v})
}

// Module is a named bundle of native functions and constants provided by
// the standard library.
type Module struct {
	Name      string
	Methods   map[string]*Native
	Constants map[string]Value
}

func (*Module) TypeName() string { return "module" }
func (m *Module) Render() string { return fmt.Sprintf("Module '%s'", m.Name) }
