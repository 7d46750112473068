/*
File   : golox/internal/environment/environment.go
Package: environment

Package environment implements the lexical frame chain the evaluator
runs against: each frame is a name->value map with a parent link,
adapted from the teacher's scope.Scope (scope/scope.go). Two changes
from the teacher's version, both required by spec.md's invariants:

 1. No Copy(): the teacher's Scope.Copy() takes a shallow snapshot of
    the defining scope for every captured closure, which breaks the
    "mutating a captured variable from an inner function is visible
    outside" testable property (spec §8) — two closures over the same
    frame would each see their own copy instead of sharing the binding.
    A closure here just keeps a pointer to the live Environment it was
    defined in, exactly like the frame chain an instance's bound method
    and the function that created it still share.
 2. A distinguished "uninitialized" sentinel that a `var` name holds
    mid-declaration, before its initializer (if any) has run; a `var x;`
    with no initializer then binds x to nil, per spec §3's Environment
    invariant. The resolver rejects a local variable
    reading itself in its own initializer statically; Declare/Get
    still bind and check the sentinel at the frame level so a global's
    self-referencing initializer (which the resolver leaves
    unresolved, since globals aren't statically tracked) fails the
    same way at runtime instead of silently observing a stale outer
    binding.
*/
package environment

import (
	"fmt"

	"github.com/loxlang/golox/internal/values"
)

// uninitialized is bound to a name by Declare before its initializer
// (if any) has been evaluated.
type uninitialized struct{}

func (uninitialized) Type() values.Type { return "uninitialized" }
func (uninitialized) String() string    { return "uninitialized" }

// Uninitialized is the sentinel value a just-declared variable holds
// before its initializer runs.
var Uninitialized values.Value = uninitialized{}

// Environment is one frame in the lexical scope chain.
type Environment struct {
	values map[string]values.Value
	Parent *Environment
}

// New creates a frame whose parent is enclosing (nil for the global
// frame).
func New(enclosing *Environment) *Environment {
	return &Environment{
		values: make(map[string]values.Value),
		Parent: enclosing,
	}
}

// Declare binds name to Uninitialized in this frame. Used for `var`
// declarations before the initializer (if any) is evaluated.
func (e *Environment) Declare(name string) {
	e.values[name] = Uninitialized
}

// Define binds name to value in this frame, always the current one —
// it never walks the parent chain. Used for `var` initializers,
// function parameters, and the `this`/`super` slots a method binding
// injects.
func (e *Environment) Define(name string, value values.Value) {
	e.values[name] = value
}

// Get looks up name starting at this frame and walking up through
// parents, returning a runtime error if it is never found. This is the
// fallback path for references the resolver left unresolved (globals).
func (e *Environment) Get(name string) (values.Value, error) {
	if v, ok := e.values[name]; ok {
		if v == Uninitialized {
			return nil, fmt.Errorf("undefined variable '%s'", name)
		}
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, fmt.Errorf("undefined variable '%s'", name)
}

// Assign updates the nearest frame (walking from this one outward)
// that already binds name, returning a runtime error if none does.
func (e *Environment) Assign(name string, value values.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return fmt.Errorf("undefined variable '%s'", name)
}

// ancestor walks exactly depth parent links up from e. The resolver
// guarantees depth never overruns the chain; a miss here is an
// interpreter bug, not a user-facing error (spec §3 invariant).
func (e *Environment) ancestor(depth int) *Environment {
	env := e
	for i := 0; i < depth; i++ {
		env = env.Parent
	}
	return env
}

// GetAt reads name after walking exactly depth parents — the resolved
// path for a Variable/This/Super reference the resolver recorded a
// depth for.
func (e *Environment) GetAt(depth int, name string) (values.Value, error) {
	frame := e.ancestor(depth)
	v, ok := frame.values[name]
	if !ok {
		return nil, fmt.Errorf("internal error: resolved variable '%s' missing at depth %d", name, depth)
	}
	return v, nil
}

// AssignAt is the resolved-path analogue of Assign.
func (e *Environment) AssignAt(depth int, name string, value values.Value) {
	frame := e.ancestor(depth)
	frame.values[name] = value
}
