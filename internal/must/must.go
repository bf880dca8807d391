// Package must provides runtime assertions.
// Violation of these assertions indicates a program fault,
// and should cause a crash to prevent operating with invalid data.
package must

import "fmt"

// Bef panics if b is false.
func Bef(b bool, format string, args ...any) {
	if !b {
		panic(fmt.Errorf(format, args...))
	}
}
