// Command classbound inspects, renders, compiles and serves component
// catalogs.
//
// Usage:
//
//	classbound list      -c catalog.yaml
//	classbound render    -c catalog.yaml Button --set primary --text Save
//	classbound compile   -c catalog.yaml -o catalog.cbc --key $KEY
//	classbound generate  -c catalog.yaml -o components_cb.go -p ui
//	classbound serve     -c catalog.yaml --addr :8080
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
