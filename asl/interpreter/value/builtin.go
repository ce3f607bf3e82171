package value

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/asl-lang/asl/asl/errors"
	"github.com/rs/zerolog"
)

var numberNames = [...]string{
	"First",
	"Second",
	"Third",
	"Fourth",
	"Fifth",
	"Sixth",
	"Seventh",
	"Eighth",
	"Ninth",
	"Tenth",
}

// CallContext is the part of the interpreter which is visible to builtin functions.
type CallContext interface {
	Executor() Executor
	Rand() *rand.Rand
	Logger() zerolog.Logger
	// Runs the program stored at `path` as a nested program and returns the result of its `main`
	Source(path string, span errors.Span) (*Value, *Interrupt)
}

type BuiltinCallback func(ctx CallContext, span errors.Span, args ...*Value) (*Value, *Interrupt)

// ArgSpec lists the value kinds accepted at one argument position.
type ArgSpec []ValueKind

func (self ArgSpec) accepts(kind ValueKind) bool {
	for _, accepted := range self {
		if accepted == kind {
			return true
		}
	}
	return false
}

func (self ArgSpec) String() string {
	names := make([]string, 0, len(self))
	for _, kind := range self {
		names = append(names, kind.String())
	}
	return strings.Join(names, " or ")
}

type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	// Contract per argument position, arguments past the end are checked against the last entry
	Args []ArgSpec
	// Whether the first argument is mutated in place when it is a variable
	MutatesFirst bool
	Callback     BuiltinCallback
}

// CheckArgs enforces the arity and the positional type contracts of the builtin.
func (self Builtin) CheckArgs(span errors.Span, args []*Value) *Interrupt {
	if len(args) < self.MinArgs || len(args) > self.MaxArgs {
		expected := fmt.Sprintf("%d", self.MinArgs)
		if self.MinArgs != self.MaxArgs {
			expected = fmt.Sprintf("%d to %d", self.MinArgs, self.MaxArgs)
		}
		s := "s"
		if self.MaxArgs == 1 {
			s = ""
		}
		return NewRuntimeErr(
			fmt.Sprintf("Function '%s' takes %s argument%s but %d were given", self.Name, expected, s, len(args)),
			ArityMismatchErrorKind,
			span,
		)
	}

	if len(self.Args) == 0 {
		return nil
	}

	for idx, arg := range args {
		spec := self.Args[len(self.Args)-1]
		if idx < len(self.Args) {
			spec = self.Args[idx]
		}
		if spec.accepts((*arg).Kind()) {
			continue
		}
		position := fmt.Sprintf("Argument %d", idx+1)
		if idx < len(numberNames) {
			position = numberNames[idx] + " argument"
		}
		return NewRuntimeErr(
			fmt.Sprintf("%s of function '%s' has to be of type %s, found %s", position, self.Name, spec, (*arg).Kind()),
			TypeMismatchErrorKind,
			span,
		)
	}

	return nil
}

// Registry maps literal names to builtin functions.
type Registry struct {
	builtins map[string]Builtin
}

func NewRegistry(builtins ...Builtin) Registry {
	registry := Registry{builtins: make(map[string]Builtin)}
	for _, builtin := range builtins {
		registry.Register(builtin)
	}
	return registry
}

func (self Registry) Register(builtin Builtin) {
	if _, exists := self.builtins[builtin.Name]; exists {
		panic(fmt.Sprintf("Builtin '%s' is registered twice", builtin.Name))
	}
	self.builtins[builtin.Name] = builtin
}

func (self Registry) Lookup(name string) (Builtin, bool) {
	builtin, found := self.builtins[name]
	return builtin, found
}

// Names returns the names of all registered builtins in sorted order.
func (self Registry) Names() []string {
	names := make([]string, 0, len(self.builtins))
	for name := range self.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
