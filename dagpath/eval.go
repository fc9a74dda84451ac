package dagpath

import "xdao.co/dagcbor"

// Get resolves a path against a value tree. The second result reports
// presence: a stored null is present, a missing key or out-of-range index
// is not.
func Get(v dagcbor.Value, path string) (dagcbor.Value, bool) {
	return GetSteps(v, Parse(path))
}

// GetSteps resolves an already-parsed step list. An empty list resolves to
// v itself.
func GetSteps(v dagcbor.Value, steps []Step) (dagcbor.Value, bool) {
	if len(steps) == 0 {
		return v, true
	}
	step, rest := steps[0], steps[1:]
	switch step.Kind {
	case StepKey:
		child, ok := v.Lookup(step.Key)
		if !ok {
			return dagcbor.Value{}, false
		}
		return GetSteps(child, rest)
	case StepIndex:
		elems, ok := v.AsArray()
		if !ok || step.Index >= len(elems) {
			return dagcbor.Value{}, false
		}
		return GetSteps(elems[step.Index], rest)
	case StepWildcard:
		children, ok := wildcardChildren(v)
		if !ok {
			return dagcbor.Value{}, false
		}
		// The remaining steps apply element-wise; misses drop out, so the
		// result is always present, possibly as an empty array.
		out := make([]dagcbor.Value, 0, len(children))
		for _, c := range children {
			if r, ok := GetSteps(c, rest); ok {
				out = append(out, r)
			}
		}
		return dagcbor.NewArray(out), true
	}
	return dagcbor.Value{}, false
}

func wildcardChildren(v dagcbor.Value) ([]dagcbor.Value, bool) {
	if elems, ok := v.AsArray(); ok {
		return elems, true
	}
	if ents, ok := v.AsMap(); ok {
		out := make([]dagcbor.Value, len(ents))
		for i, e := range ents {
			out[i] = e.Value
		}
		return out, true
	}
	return nil, false
}
