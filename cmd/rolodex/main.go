// Command rolodex runs scripts against an in-memory contact directory.
package main

import "github.com/mesh-intelligence/rolodex/internal/cli"

func main() {
	cli.Execute()
}
