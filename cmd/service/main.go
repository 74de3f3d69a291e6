// File: cmd/service/main.go
package main

import (
	"log"
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
