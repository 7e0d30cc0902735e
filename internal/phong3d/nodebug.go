//go:build !debug
// +build !debug

package phong3d

import "fmt"

// DebugLog prints only when the Debug toggle is set; build with -tags debug to log unconditionally.
func DebugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func DebugLogOnce(format string, args ...interface{}) {}
