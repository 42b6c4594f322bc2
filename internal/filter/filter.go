package filter

import (
	"fmt"
	"strings"

	"github.com/BerryBytes/awsaudit/models"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type (
	// CompilationError indicates a filter expression could not be compiled.
	CompilationError struct {
		Expression string
		Reason     string
		Err        error
	}

	// EvaluationError indicates a compiled filter failed on an instance.
	EvaluationError struct {
		Expression string
		InstanceID string
		Err        error
	}
)

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation error in '%s': %s", e.Expression, e.Reason)
}

func (e *CompilationError) Unwrap() error { return e.Err }

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluation error for filter '%s' on instance '%s': %v", e.Expression, e.InstanceID, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// InstanceFilter is a compiled boolean expression over models.EC2Instance
// fields, e.g. `State == "running" && Tags["owner"] == "ops"`. A nil
// *InstanceFilter matches everything.
type InstanceFilter struct {
	expression string
	program    *vm.Program
}

// CompileInstanceFilter compiles expression; an empty expression yields a
// nil filter.
func CompileInstanceFilter(expression string) (*InstanceFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, nil
	}

	program, err := expr.Compile(expression, expr.Env(models.EC2Instance{}), expr.AsBool())
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error(), Err: err}
	}
	return &InstanceFilter{expression: expression, program: program}, nil
}

func (f *InstanceFilter) String() string {
	if f == nil {
		return ""
	}
	return f.expression
}

func (f *InstanceFilter) Match(inst models.EC2Instance) (bool, error) {
	if f == nil {
		return true, nil
	}
	out, err := expr.Run(f.program, inst)
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, InstanceID: inst.InstanceID, Err: err}
	}
	matched, _ := out.(bool)
	return matched, nil
}

// Apply keeps the instances the filter matches, preserving order.
func (f *InstanceFilter) Apply(instances []models.EC2Instance) ([]models.EC2Instance, error) {
	if f == nil {
		return instances, nil
	}
	var kept []models.EC2Instance
	for _, inst := range instances {
		ok, err := f.Match(inst)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, inst)
		}
	}
	return kept, nil
}
