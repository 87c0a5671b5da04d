// Command gpsdo-config computes PLL divider settings for Si53xx-based
// GPSDO modules so that both outputs reproduce the requested
// frequencies exactly.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
