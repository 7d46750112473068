/*
File   : golox/internal/class/class.go
Package: class

Package class defines Class and Instance, adapted from the teacher's
objects.GoMixStruct / objects.GoMixObjectInstance (objects/struct.go).
The teacher's struct type has no superclass — GoMix structs don't
inherit — so Superclass and the walk-the-chain method lookup in
FindMethod are new, grounded on spec §3/§4.4's single-inheritance rules
instead of on teacher code.
*/
package class

import (
	"fmt"

	"github.com/loxlang/golox/internal/callable"
	"github.com/loxlang/golox/internal/values"
)

// Class is a Lox class: a name, an optional superclass, and its own
// method table (not including inherited methods, which FindMethod
// reaches by walking Superclass).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*callable.Function
}

func (c *Class) Type() values.Type { return values.ClassType }
func (c *Class) String() string    { return c.Name }

// FindMethod looks up name on this class, then walks the superclass
// chain, implementing "subclass-first then superclass chain" method
// resolution order (spec §8).
func (c *Class) FindMethod(name string) (*callable.Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the initializer's arity, or 0 if the class declares none
// (spec §4.4: "Class call ... arity is the init's arity (or 0 if
// none)").
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Instance is a live object created by calling a Class.
type Instance struct {
	Class  *Class
	Fields map[string]values.Value
}

// NewInstance creates an instance with no fields set yet.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]values.Value)}
}

func (i *Instance) Type() values.Type { return values.InstanceType }
func (i *Instance) String() string    { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get reads a property: fields shadow methods (spec §4.4), and a
// method hit is returned bound to this instance.
func (i *Instance) Get(name string) (values.Value, error) {
	if v, ok := i.Fields[name]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set writes a field, creating it if it doesn't already exist — Lox
// instances have no fixed field set (spec §4.4).
func (i *Instance) Set(name string, value values.Value) {
	i.Fields[name] = value
}
