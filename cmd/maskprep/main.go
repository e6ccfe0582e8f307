// cmd/maskprep/main.go
package main

import (
	"maskprep/internal/appshell"
	"maskprep/internal/app"
)

func main() { appshell.Main(app.RunContext) }
