// cmd/keggblast-species/main.go
package main

import (
	"keggblast/internal/appshell"
	"keggblast/internal/speciesapp"
)

func main() {
	appshell.Main(speciesapp.RunContext)
}
