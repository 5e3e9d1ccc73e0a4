package cli

import (
	"fmt"
	"os"
)

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func truncateAddress(addr string) string {
	if len(addr) < 14 {
		return addr
	}
	return addr[:8] + "..." + addr[len(addr)-6:]
}
