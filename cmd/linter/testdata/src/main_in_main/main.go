package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 3 {
		log.Fatal("too many arguments")
	}
	run()
	os.Exit(0)
}

func run() {
	log.Fatalf("failed: %d", 1) // want `log.Fatalf\(\) should only be called from main function in main package`
	os.Exit(1)                  // want `os.Exit\(\) should only be called from main function in main package`
}
