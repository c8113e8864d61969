package bridge

import (
	"fmt"

	"github.com/dop251/goja"
)

func init() {
	Register("goja", func() Runtime { return &gojaRuntime{} })
}

// gojaRuntime backs the default Runtime Bridge with a github.com/dop251/goja
// evaluator, replacing the teacher's single-purpose NSolver with one that
// implements the full bridge contract for both challenge kinds.
type gojaRuntime struct {
	vm *goja.Runtime
}

func (r *gojaRuntime) Load(program string) error {
	r.vm = goja.New()
	if err := r.vm.Set("_result", r.vm.NewObject()); err != nil {
		return fmt.Errorf("goja: installing _result: %w", err)
	}
	if _, err := r.vm.RunString(program); err != nil {
		return fmt.Errorf("goja: evaluating program: %w", err)
	}
	return nil
}

func (r *gojaRuntime) Solve(kind, input string) (string, error) {
	result := r.vm.Get("_result")
	if result == nil || goja.IsUndefined(result) {
		return "", fmt.Errorf("goja: _result is not defined")
	}

	fnVal := result.ToObject(r.vm).Get(kind)
	fn, ok := goja.AssertFunction(fnVal)
	if !ok {
		return "", fmt.Errorf("goja: _result.%s is not a function", kind)
	}

	ret, err := fn(goja.Undefined(), r.vm.ToValue(input))
	if err != nil {
		return "", fmt.Errorf("goja: _result.%s(%q): %w", kind, input, err)
	}
	return ret.String(), nil
}
