package main

import "github.com/ucad-dsi/gestion-budget/cmd"

func main() {
	cmd.Execute()
}
