package enum

import (
	"iter"
)

type stepKind int

const (
	stepContinue stepKind = iota
	stepBreak
	stepReturn
)

// Step tells a traversal how to proceed. The zero Step is Continue.
type Step struct {
	kind  stepKind
	value any
	set   bool
}

// Continue moves on to the next value
var Continue = Step{}

// Break stops the traversal. ForEach yields the optional value, or its
// default when none is given. Map and Filter drop the current element.
func Break(value ...any) Step {
	if len(value) == 0 {
		return Step{kind: stepBreak}
	}
	return Step{kind: stepBreak, value: value[0], set: true}
}

// Return stops the traversal after the current element. ForEach yields value.
// Map keeps the current result and Filter still applies the predicate.
func Return(value any) Step {
	return Step{kind: stepReturn, value: value, set: true}
}

// IsBreak reports whether the step is a Break
func (s Step) IsBreak() bool { return s.kind == stepBreak }

// IsReturn reports whether the step is a Return
func (s Step) IsReturn() bool { return s.kind == stepReturn }

// All returns an iterator over index and value in key order.
// Each call starts again from the first value.
func (e *Enum) All() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i, v := range e.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over index and value from the last value to the first
func (e *Enum) Backward() iter.Seq2[int, *Value] {
	return func(yield func(int, *Value) bool) {
		for i := len(e.values) - 1; i >= 0; i-- {
			if !yield(i, e.values[i]) {
				return
			}
		}
	}
}

// ForEach calls fn for every value in order until fn returns Break or Return.
// It returns the value carried by that step, or def when the traversal ran to
// the end or broke without a value.
func (e *Enum) ForEach(fn func(v *Value) Step, def any) any {
	return forEach(e.All(), fn, def)
}

// ForEachRight is ForEach from the last value to the first
func (e *Enum) ForEachRight(fn func(v *Value) Step, def any) any {
	return forEach(e.Backward(), fn, def)
}

func forEach(seq iter.Seq2[int, *Value], fn func(v *Value) Step, def any) any {
	for _, v := range seq {
		step := fn(v)
		if step.kind != stepContinue {
			if step.set {
				return step.value
			}
			return def
		}
	}
	return def
}

// Map collects fn's results in order, stopping early on Break or Return
func Map[T any](e *Enum, fn func(v *Value) (T, Step)) []T {
	return mapSeq(e.All(), e.Len(), fn)
}

// MapRight is Map from the last value to the first
func MapRight[T any](e *Enum, fn func(v *Value) (T, Step)) []T {
	return mapSeq(e.Backward(), e.Len(), fn)
}

func mapSeq[T any](seq iter.Seq2[int, *Value], size int, fn func(v *Value) (T, Step)) []T {
	result := make([]T, 0, size)
	for _, v := range seq {
		mapped, step := fn(v)
		switch step.kind {
		case stepBreak:
			return result
		case stepReturn:
			return append(result, mapped)
		}
		result = append(result, mapped)
	}
	return result
}

// Filter keeps the values for which fn reports true, stopping early on Break or Return
func Filter(e *Enum, fn func(v *Value) (bool, Step)) []*Value {
	return filterSeq(e.All(), fn)
}

// FilterRight is Filter from the last value to the first
func FilterRight(e *Enum, fn func(v *Value) (bool, Step)) []*Value {
	return filterSeq(e.Backward(), fn)
}

func filterSeq(seq iter.Seq2[int, *Value], fn func(v *Value) (bool, Step)) []*Value {
	var result []*Value
	for _, v := range seq {
		keep, step := fn(v)
		if step.kind == stepBreak {
			return result
		}
		if keep {
			result = append(result, v)
		}
		if step.kind == stepReturn {
			return result
		}
	}
	return result
}
