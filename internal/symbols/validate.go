package symbols

import "fmt"

// color is the three-color mark used by the cycle-detecting DFS.
type color int

const (
	white color = iota
	temp
	black
)

// ValidateInheritance checks that every declared base exists, that the
// inheritance graph has no cycle, and that every base class has a default
// constructor. Override return types are checked by the analyzer, and
// override-virtuality propagation lives in classtable.Build because it
// needs the merged vtable construction. It
// returns every violation found, not just the first, so a submission
// with several unrelated inheritance errors reports all of them.
func (ct *ClassTable) ValidateInheritance() []error {
	var errs []error

	for _, name := range ct.order {
		sym := ct.classes[name]
		if sym.BaseName != "" {
			if !ct.Has(sym.BaseName) {
				errs = append(errs, fmt.Errorf("class %q inherits from undeclared class %q", sym.Name, sym.BaseName))
			}
		}
	}

	errs = append(errs, ct.checkCycles()...)

	for _, name := range ct.order {
		sym := ct.classes[name]
		if sym.BaseName == "" {
			continue
		}
		base, ok := ct.Get(sym.BaseName)
		if !ok {
			continue // already reported above
		}
		if !base.HasDefaultConstructor() {
			errs = append(errs, fmt.Errorf("base class %q of %q has no default constructor", base.Name, sym.Name))
		}
	}

	return errs
}

func (ct *ClassTable) checkCycles() []error {
	var errs []error
	marks := make(map[string]color)

	var visit func(name string) bool
	visit = func(name string) bool {
		sym, ok := ct.classes[name]
		if !ok {
			return true
		}
		switch marks[name] {
		case black:
			return true
		case temp:
			return false
		}
		marks[name] = temp
		if sym.BaseName != "" {
			if !visit(sym.BaseName) {
				return false
			}
		}
		marks[name] = black
		return true
	}

	for _, name := range ct.order {
		if marks[name] == white {
			if !visit(name) {
				errs = append(errs, fmt.Errorf("inheritance cycle detected involving class %q", name))
			}
		}
	}
	return errs
}
