// cmd/rmlines/main.go
package main

import (
	"maskprep/internal/appshell"
	"maskprep/internal/linesapp"
)

func main() { appshell.Main(linesapp.RunContext) }
