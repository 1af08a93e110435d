package main

import "github.com/julianjandeleit/worktime/cmd"

func main() {
	cmd.Execute()
}
