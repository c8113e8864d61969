package bridge

import (
	"fmt"

	"github.com/robertkrimen/otto"
)

func init() {
	Register("otto", func() Runtime { return &ottoRuntime{} })
}

// ottoRuntime is the alternate, selectable Runtime Bridge backend, grounded
// in the pack's precedent of shipping goja and otto side by side for the
// same JS-evaluation workload.
type ottoRuntime struct {
	vm *otto.Otto
}

func (r *ottoRuntime) Load(program string) error {
	r.vm = otto.New()
	if err := r.vm.Set("_result", map[string]interface{}{}); err != nil {
		return fmt.Errorf("otto: installing _result: %w", err)
	}
	if _, err := r.vm.Run(program); err != nil {
		return fmt.Errorf("otto: evaluating program: %w", err)
	}
	return nil
}

func (r *ottoRuntime) Solve(kind, input string) (string, error) {
	result, err := r.vm.Get("_result")
	if err != nil {
		return "", fmt.Errorf("otto: reading _result: %w", err)
	}

	resultObj := result.Object()
	if resultObj == nil {
		return "", fmt.Errorf("otto: _result is not an object")
	}

	fn, err := resultObj.Get(kind)
	if err != nil {
		return "", fmt.Errorf("otto: reading _result.%s: %w", kind, err)
	}
	if !fn.IsFunction() {
		return "", fmt.Errorf("otto: _result.%s is not a function", kind)
	}

	ret, err := fn.Call(otto.UndefinedValue(), input)
	if err != nil {
		return "", fmt.Errorf("otto: _result.%s(%q): %w", kind, input, err)
	}
	return ret.String(), nil
}
