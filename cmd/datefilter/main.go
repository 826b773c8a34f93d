// Command datefilter reformats date strings from one locale-aware format to
// another.
//
//	datefilter --locale en_US --date-style short --pattern yyyy-MM-dd "3/15/24, 2:30 PM"
//	printf '15.03.24, 14:30\n' | datefilter -l de_DE -d short -p "d. MMMM yyyy"
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
