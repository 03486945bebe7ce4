package main

import "sales-dashboard/cmd/salesctl/commands"

func main() {
	commands.Execute()
}
