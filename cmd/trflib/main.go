// cmd/trflib/main.go
package main

import (
	"maskprep/internal/appshell"
	"maskprep/internal/trfapp"
)

func main() { appshell.Main(trfapp.RunContext) }
