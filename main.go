package main

import "exam-bank/cmd"

func main() {
	cmd.Execute()
}
