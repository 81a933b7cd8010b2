package main

import "github.com/matthieukhl/stockroom/internal/cmd"

func main() {
	cmd.Execute()
}
