package main

import "github.com/drivemark/drivemark/cmd"

func main() {
	cmd.Execute()
}
