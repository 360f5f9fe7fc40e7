// Command shapeinfo renders the response of the control-rate shapers.
//
// Usage:
//
//	shapeinfo <lag|spring|energy|stability> [flags]
//
// Examples:
//
//	shapeinfo lag --attack-ms 200 --release-ms 40
//	shapeinfo spring --freq-hz 4 --damping 0.3 --ticks 200 --every 10
//	shapeinfo spring --reference
//	shapeinfo energy --stiffness 1 0 0.5 0.1 0.6 tick tick tick
//	shapeinfo stability --freq-hz 20 --damping 0 --dt-seconds 0.02
package main

import "os"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
