package main

import "github.com/kamusis/jobskill-cli/cmd"

func main() {
	cmd.Execute()
}
