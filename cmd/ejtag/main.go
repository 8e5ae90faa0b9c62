package main

import "github.com/OpenTraceLab/OpenTraceEJTAG/cmd/ejtag/cmd"

func main() {
	cmd.Execute()
}
