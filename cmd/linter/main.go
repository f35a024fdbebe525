// Команда notifycheck запускает анализатор как отдельную утилиту:
//
//	go run ./cmd/linter ./...
package main

import "golang.org/x/tools/go/analysis/singlechecker"

func main() {
	singlechecker.Main(Analyzer)
}
