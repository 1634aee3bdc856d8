// cmd/keggblast/main.go
package main

import (
	"keggblast/internal/app"
	"keggblast/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
