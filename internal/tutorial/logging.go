package tutorial

import (
	"fmt"
	"io"

	"github.com/kazakovdmitriy/go-idioms/internal/logger"
)

func printLogMessages(node *logger.Node) {
	log := node.Logger()
	log.Debug("🐶")
	log.Info("👀")
	log.Warn("😮")
	log.Error("😰")
}

// Logging показывает наследование уровней в иерархии логгеров.
func Logging(out io.Writer) error {
	h := logger.NewHierarchy(out)

	log := h.Root().Child("tutorial")
	fmt.Fprintln(out, "--- Default log level ---")
	printLogMessages(log)

	fmt.Fprintln(out, "\n--- Set log level to DEBUG ---")
	if err := log.SetLevel("DEBUG"); err != nil {
		return err
	}
	printLogMessages(log)

	fmt.Fprintln(out, "\n--- Use a child logger ---")
	child := log.Child("subprocess")
	if err := child.SetLevel("ERROR"); err != nil {
		return err
	}
	printLogMessages(child)

	return nil
}
