package bitstream

import (
	"strconv"
	"strings"
	"sync"

	"github.com/mewkiz/pkg/dbg"
)

// CodeFactory binds a parsed code descriptor's parameter string to a
// concrete Put/Get pair on a stream. params is whatever text followed the
// code name inside the parentheses, or "" if there were none.
type CodeFactory func(s *BitStream, params string) (put func(uint64) error, get func() (uint64, error), err error)

// CodeRegistry resolves textual code descriptors of the form
// name or name(params) — case-insensitive, "-"-separated params for
// start-stop and a single integer for every other parameterized code —
// to a bound Put/Get pair. It ships pre-populated with every code this
// package implements and can be extended with AddCode.
type CodeRegistry struct {
	mu      sync.RWMutex
	entries map[string]CodeFactory
}

// NewCodeRegistry returns a registry with all built-in codes registered.
func NewCodeRegistry() *CodeRegistry {
	r := &CodeRegistry{entries: make(map[string]CodeFactory)}
	r.registerBuiltins()
	return r
}

// AddCode registers (or replaces) the factory for name, case-insensitively.
func (r *CodeRegistry) AddCode(name string, factory CodeFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[strings.ToLower(name)] = factory
}

// Resolve parses desc ("name" or "name(params)") and returns the bound
// Put/Get pair for s. Unknown names fail UnknownCode.
func (r *CodeRegistry) Resolve(s *BitStream, desc string) (put func(uint64) error, get func() (uint64, error), err error) {
	const op = "CodeRegistry.Resolve"
	name, params := splitCodeDesc(desc)
	dbg.Println("resolving code descriptor:", desc, "-> name:", name, "params:", params)
	r.mu.RLock()
	factory, ok := r.entries[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, nil, errf(op, UnknownCode, "unknown code %q", name)
	}
	put, get, err = factory(s, params)
	if err != nil {
		return nil, nil, err
	}
	return put, get, nil
}

// splitCodeDesc splits "name(params)" into ("name", "params"), or
// ("name", "") if there are no parentheses. It does not validate balance
// beyond requiring a trailing ")".
func splitCodeDesc(desc string) (name, params string) {
	desc = strings.TrimSpace(desc)
	open := strings.IndexByte(desc, '(')
	if open < 0 {
		return desc, ""
	}
	name = desc[:open]
	params = strings.TrimSuffix(desc[open+1:], ")")
	return name, params
}

func parseUintParam(op, params string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(params), 10, 64)
	if err != nil {
		return 0, errf(op, BadArgument, "invalid parameter %q: %v", params, err)
	}
	return v, nil
}

func parseIntParam(op, params string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(params))
	if err != nil {
		return 0, errf(op, BadArgument, "invalid parameter %q: %v", params, err)
	}
	return v, nil
}

func parseStepsParam(op, params string) ([]int, error) {
	fields := strings.Split(params, "-")
	steps := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			return nil, errf(op, BadArgument, "empty step in %q", params)
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errf(op, BadArgument, "invalid step %q: %v", f, err)
		}
		steps = append(steps, n)
	}
	if len(steps) == 0 {
		return nil, errf(op, BadArgument, "steps must be non-empty")
	}
	return steps, nil
}

func (r *CodeRegistry) registerBuiltins() {
	r.entries["unary"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutUnary, s.GetUnary, nil
	}
	r.entries["unary1"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutUnary1, s.GetUnary1, nil
	}
	r.entries["gamma"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutGamma, s.GetGamma, nil
	}
	r.entries["delta"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutDelta, s.GetDelta, nil
	}
	r.entries["omega"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutOmega, s.GetOmega, nil
	}
	r.entries["fib"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutFib, s.GetFib, nil
	}
	r.entries["fibc2"] = r.entries["fib"]
	r.entries["levenstein"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutLevenstein, s.GetLevenstein, nil
	}
	r.entries["evenrodeh"] = func(s *BitStream, _ string) (func(uint64) error, func() (uint64, error), error) {
		return s.PutEvenRodeh, s.GetEvenRodeh, nil
	}
	r.entries["rice"] = func(s *BitStream, params string) (func(uint64) error, func() (uint64, error), error) {
		k, err := parseIntParam("rice", params)
		if err != nil {
			return nil, nil, err
		}
		return func(v uint64) error { return s.PutRice(v, k) },
			func() (uint64, error) { return s.GetRice(k) }, nil
	}
	r.entries["golomb"] = func(s *BitStream, params string) (func(uint64) error, func() (uint64, error), error) {
		m, err := parseUintParam("golomb", params)
		if err != nil {
			return nil, nil, err
		}
		return func(v uint64) error { return s.PutGolomb(v, m) },
			func() (uint64, error) { return s.GetGolomb(m) }, nil
	}
	r.entries["gammagolomb"] = func(s *BitStream, params string) (func(uint64) error, func() (uint64, error), error) {
		m, err := parseUintParam("gammagolomb", params)
		if err != nil {
			return nil, nil, err
		}
		return func(v uint64) error { return s.PutGammaGolomb(v, m) },
			func() (uint64, error) { return s.GetGammaGolomb(m) }, nil
	}
	r.entries["expgolomb"] = func(s *BitStream, params string) (func(uint64) error, func() (uint64, error), error) {
		k, err := parseIntParam("expgolomb", params)
		if err != nil {
			return nil, nil, err
		}
		return func(v uint64) error { return s.PutExpGolomb(v, k) },
			func() (uint64, error) { return s.GetExpGolomb(k) }, nil
	}
	r.entries["startstop"] = func(s *BitStream, params string) (func(uint64) error, func() (uint64, error), error) {
		steps, err := parseStepsParam("startstop", params)
		if err != nil {
			return nil, nil, err
		}
		return func(v uint64) error { return s.PutStartStop(v, steps) },
			func() (uint64, error) { return s.GetStartStop(steps) }, nil
	}
}
