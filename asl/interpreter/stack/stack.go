package stack

import (
	"fmt"
	"sort"

	"github.com/asl-lang/asl/asl/errors"
	"github.com/asl-lang/asl/asl/interpreter/value"
)

// Frame is the activation record of one function call.
type Frame struct {
	Function string
	// Location of the call which created this frame, zero for the entry point
	CallSite errors.Span
	// Slots are pointers so that by-reference parameters can share the slot of the caller
	variables map[string]*value.Value
}

type Stack struct {
	frames []Frame
	limit  uint
}

func NewStack(limit uint) *Stack {
	return &Stack{
		frames: make([]Frame, 0),
		limit:  limit,
	}
}

func (self *Stack) Depth() int { return len(self.frames) }

// Push creates a new activation record, it fails once the configured limit is reached.
func (self *Stack) Push(function string, callSite errors.Span) *value.Interrupt {
	if self.limit > 0 && uint(len(self.frames)) >= self.limit {
		return value.NewRuntimeErr(
			fmt.Sprintf("Maximum callstack size of %d was exceeded", self.limit),
			value.StackOverFlowErrorKind,
			callSite,
		)
	}
	self.frames = append(self.frames, Frame{
		Function:  function,
		CallSite:  callSite,
		variables: make(map[string]*value.Value),
	})
	return nil
}

func (self *Stack) Pop() {
	if len(self.frames) == 0 {
		panic("Cannot pop an activation record from an empty stack")
	}
	self.frames = self.frames[:len(self.frames)-1]
}

func (self *Stack) top() *Frame {
	if len(self.frames) == 0 {
		panic("No activation record has been pushed")
	}
	return &self.frames[len(self.frames)-1]
}

// Define binds the slot to the name in the current frame.
// Passing the slot of another frame creates a by-reference binding.
func (self *Stack) Define(name string, slot *value.Value) {
	self.top().variables[name] = slot
}

// Lookup returns the live slot of a variable of the current frame.
func (self *Stack) Lookup(name string) (*value.Value, bool) {
	slot, found := self.top().variables[name]
	return slot, found
}

// Set overwrites the slot of an existing variable or defines a new one.
// Overwriting writes through the slot, so by-reference bindings observe the new value.
func (self *Stack) Set(name string, val value.Value) {
	if slot, found := self.Lookup(name); found {
		*slot = val
		return
	}
	newSlot := val
	self.Define(name, &newSlot)
}

// Names returns the names of all variables of the current frame in sorted order.
func (self *Stack) Names() []string {
	variables := self.top().variables
	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Trace renders the call stack, innermost frame first.
// If there are more than `maxFrames` frames, the outer ones are summarized.
func (self *Stack) Trace(maxFrames int) []string {
	out := make([]string, 0)
	for idx := len(self.frames) - 1; idx >= 0; idx-- {
		if maxFrames > 0 && len(out) == maxFrames {
			out = append(out, fmt.Sprintf("... %d more frames", idx+1))
			break
		}
		frame := self.frames[idx]
		if idx == 0 {
			out = append(out, fmt.Sprintf("%s <entry point>", frame.Function))
			continue
		}
		out = append(out, fmt.Sprintf("%s called at %s", frame.Function, frame.CallSite))
	}
	return out
}
