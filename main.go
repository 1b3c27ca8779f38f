package main

import (
	"boardeditor/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunBoardEditor(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
