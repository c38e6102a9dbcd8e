// Command uitree resolves styles for element trees described in YAML.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/uitree/cmd/uitree/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
