package main

import "github.com/hrplane/employee-management/cmd"

func main() {
	cmd.Execute()
}
