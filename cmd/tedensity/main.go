// cmd/tedensity/main.go
package main

import (
	"maskprep/internal/appshell"
	"maskprep/internal/densityapp"
)

func main() { appshell.Main(densityapp.RunContext) }
