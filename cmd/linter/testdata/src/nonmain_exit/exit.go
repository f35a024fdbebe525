package nonmain_exit

import (
	"log"
	"os"
)

func main() {
	log.Fatalln("stop") // want `log.Fatalln\(\) should only be called from main function in main package`
	os.Exit(2)          // want `os.Exit\(\) should only be called from main function in main package`
}
