package main

import "forestlog/cmd/fl/root"

func main() {
	root.Execute()
}
