package main

import "github.com/cfddev/gorans/cmd"

func main() {
	cmd.Execute()
}
