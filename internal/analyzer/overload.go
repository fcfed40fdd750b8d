package analyzer

import (
	"github.com/oolang/oolang/internal/symbols"
	"github.com/oolang/oolang/internal/typesystem"
)

// resolveOverload picks the best-scoring viable overload from sigs for a
// call site with the given static argument types and lvalue-ness. A candidate is viable only if arity
// matches and every argument fits its parameter: a value parameter needs
// the same base type (for a class, the same class — no derived-to-base
// conversion), while a reference parameter also accepts an argument whose
// class is derived from the parameter's. Among viable candidates, a reference parameter
// scores higher than a value parameter at the same position (binding
// through a reference additionally requires the argument to be an
// lvalue); the strictly-greatest total score wins, and a tie among the
// best-scoring candidates is ambiguous.
func (a *Analyzer) resolveOverload(sigs []symbols.Signature, argTypes []typesystem.Type, argLvalue []bool) (chosen *symbols.Signature, ambiguous bool) {
	bestScore := -1
	var best []*symbols.Signature

	for i := range sigs {
		sig := &sigs[i]
		if len(sig.Params) != len(argTypes) {
			continue
		}
		score, viable := a.scoreOverload(sig.Params, argTypes, argLvalue)
		if !viable {
			continue
		}
		switch {
		case score > bestScore:
			bestScore = score
			best = []*symbols.Signature{sig}
		case score == bestScore:
			best = append(best, sig)
		}
	}

	switch len(best) {
	case 0:
		return nil, false
	case 1:
		return best[0], false
	default:
		return nil, true
	}
}

func (a *Analyzer) scoreOverload(params []typesystem.Type, args []typesystem.Type, argLvalue []bool) (int, bool) {
	score := 0
	for i, p := range params {
		if p.IsRef {
			if !argLvalue[i] || !a.refParamCompatible(p.Base(), args[i]) {
				return 0, false
			}
			score += 2
		} else {
			if !a.valueParamCompatible(p.Base(), args[i]) {
				return 0, false
			}
			score += 1
		}
	}
	return score, true
}

// refParamCompatible is the binding rule for a reference parameter: the
// argument's base type may equal the parameter's, or be strictly derived
// from it (the reference then refers to the wider dynamic object without
// slicing it — this is what makes virtual dispatch through a reference
// parameter work, spec.md S4).
func (a *Analyzer) refParamCompatible(paramBase, argBase typesystem.Type) bool {
	if paramBase.Kind != argBase.Kind {
		return false
	}
	if paramBase.Kind == typesystem.Class {
		return paramBase.ClassName == argBase.ClassName || a.ct.IsDerivedFrom(argBase.ClassName, paramBase.ClassName)
	}
	return true
}

// valueParamCompatible is the binding rule for a plain value parameter:
// base(Pi) must equal Ai exactly, with no implicit widening — unlike a
// reference parameter or a plain assignment, overload resolution never
// slices a value argument into a less-derived parameter type.
func (a *Analyzer) valueParamCompatible(paramBase, argBase typesystem.Type) bool {
	return paramBase.Equal(argBase)
}
