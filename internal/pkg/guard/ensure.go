package guard

import "fmt"

// ContractViolation is the panic value raised by Ensure.
type ContractViolation struct {
	Message string
}

func (c *ContractViolation) Error() string {
	return "contract violation: " + c.Message
}

// Ensure panics with a *ContractViolation when cond is false.
// The message is only formatted on failure.
func Ensure(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(&ContractViolation{Message: fmt.Sprintf(format, args...)})
}
