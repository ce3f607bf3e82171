package interpreter

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/asl-lang/asl/asl/ast"
	"github.com/asl-lang/asl/asl/errors"
	"github.com/asl-lang/asl/asl/interpreter/value"
)

const maxSuggestionDistance = 2

// didYouMean returns a note naming the closest candidate, if any is close enough.
func didYouMean(name string, candidates []string) []string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	if best == "" {
		return nil
	}
	return []string{fmt.Sprintf("Did you mean '%s'?", best)}
}

func arityMismatch(name string, expected int, found int, span errors.Span) *value.Interrupt {
	s := "s"
	if expected == 1 {
		s = ""
	}
	return value.NewRuntimeErr(
		fmt.Sprintf("Function '%s' takes %d argument%s but %d were given", name, expected, s, found),
		value.ArityMismatchErrorKind,
		span,
	)
}

// lookupSlot returns the live slot of a variable.
func (self *Interpreter) lookupSlot(node ast.IdentExpression) (*value.Value, *value.Interrupt) {
	slot, found := self.stack.Lookup(node.Ident)
	if !found {
		return nil, value.WithNotes(
			value.NewRuntimeErr(
				fmt.Sprintf("Variable '%s' is not defined", node.Ident),
				value.UndefinedVariableErrorKind,
				node.Range,
			),
			didYouMean(node.Ident, self.stack.Names())...,
		)
	}
	return slot, nil
}

func (self *Interpreter) callFunc(call ast.CallExpression) (*value.Value, *value.Interrupt) {
	if builtin, found := self.builtins.Lookup(call.Ident); found {
		return self.callBuiltin(builtin, call)
	}

	fn, found := self.functions[call.Ident]
	if !found {
		candidates := append(self.builtins.Names(), functionNames(self.program)...)
		return nil, value.WithNotes(
			value.NewRuntimeErr(
				fmt.Sprintf("Function '%s' is not defined", call.Ident),
				value.UndefinedFunctionErrorKind,
				call.Range,
			),
			didYouMean(call.Ident, candidates)...,
		)
	}

	if len(call.Arguments) != len(fn.Params) {
		return nil, arityMismatch(fn.Ident, len(fn.Params), len(call.Arguments), call.Range)
	}

	args := make([]*value.Value, 0, len(fn.Params))
	for idx, param := range fn.Params {
		arg := call.Arguments[idx]

		switch param.Mode {
		case ast.ByValue:
			val, i := self.expression(arg)
			if i != nil {
				return nil, i
			}
			args = append(args, val)
		case ast.ByReference:
			ident, isIdent := arg.(ast.IdentExpression)
			if !isIdent {
				return nil, value.NewRuntimeErr(
					fmt.Sprintf("Parameter '%s' of function '%s' is passed by reference, the argument must be a variable", param.Ident, fn.Ident),
					value.ReferenceExpectedErrorKind,
					arg.Span(),
				)
			}
			slot, i := self.lookupSlot(ident)
			if i != nil {
				return nil, i
			}
			args = append(args, slot)
		default:
			panic("A new parameter mode was added without updating this code")
		}
	}

	return self.callUserFunc(call.Range, fn, args, false)
}

func (self *Interpreter) callUserFunc(span errors.Span, fn ast.FunctionDefinition, args []*value.Value, entry bool) (*value.Value, *value.Interrupt) {
	if len(args) != len(fn.Params) {
		return nil, arityMismatch(fn.Ident, len(fn.Params), len(args), span)
	}

	if i := self.stack.Push(fn.Ident, span); i != nil {
		return nil, i
	}
	self.tracer.call(fn, args, span.Start.Line, entry)
	self.options.Logger.Trace().Str("function", fn.Ident).Int("depth", self.stack.Depth()).Msg("Entering function")

	// rows of an enclosing pipeline are not visible inside the callee
	rowPrev := self.row
	self.row = nil
	defer func() {
		self.row = rowPrev
		self.stack.Pop()
	}()

	for idx, param := range fn.Params {
		self.stack.Define(param.Ident, args[idx])
	}

	result := value.NewValueVoid()
	if i := self.block(fn.Body); i != nil {
		if (*i).Kind() != value.ReturnInterruptKind {
			self.tracer.unwind()
			return nil, value.WithStackTrace(i, self.stack.Trace(self.options.StackTraceFrames))
		}
		ret := (*i).(value.ReturnInterrupt).ReturnValue
		result = &ret
	}

	self.tracer.ret(fn, *result, args, self.currentSpan.Start.Line)
	self.options.Logger.Trace().Str("function", fn.Ident).Str("result", (*result).Kind().String()).Msg("Leaving function")

	return result, nil
}

// callBuiltin passes the first argument live to mutating builtins if it is a variable.
// Every other argument is a fresh value.
func (self *Interpreter) callBuiltin(builtin value.Builtin, call ast.CallExpression) (*value.Value, *value.Interrupt) {
	args := make([]*value.Value, 0, len(call.Arguments))
	for idx, arg := range call.Arguments {
		if ident, isIdent := arg.(ast.IdentExpression); isIdent && idx == 0 && builtin.MutatesFirst {
			slot, i := self.lookupSlot(ident)
			if i != nil {
				return nil, i
			}
			args = append(args, slot)
			continue
		}

		val, i := self.expression(arg)
		if i != nil {
			return nil, i
		}
		args = append(args, val)
	}

	if i := builtin.CheckArgs(call.Range, args); i != nil {
		return nil, i
	}

	self.options.Logger.Debug().Str("builtin", builtin.Name).Int("args", len(args)).Msg("Calling builtin")

	return builtin.Callback(self, call.Range, args...)
}

func (self *Interpreter) block(node ast.Block) *value.Interrupt {
	for _, statement := range node.Statements {
		if i := self.statement(statement); i != nil {
			return i
		}
	}
	return nil
}

func functionNames(program ast.Program) []string {
	names := make([]string, 0, len(program.Functions))
	for _, fn := range program.Functions {
		names = append(names, fn.Ident)
	}
	return names
}
