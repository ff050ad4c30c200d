// Minimal entry point that delegates CLI handling to the cobra root
// command in cmd/root.go.

package main

import (
	"github.com/emreebayir/cpu-scheduling-simulator/cmd"
)

func main() {
	cmd.Execute()
}
