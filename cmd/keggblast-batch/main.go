// cmd/keggblast-batch/main.go
package main

import (
	"keggblast/internal/appshell"
	"keggblast/internal/batchapp"
)

func main() {
	appshell.Main(batchapp.RunContext)
}
