// cmd/isoplan/main.go
package main

import (
	"isoplan/internal/app"
	"isoplan/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
