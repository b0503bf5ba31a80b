package main

import "vitacoach/cmd/vc/root"

func main() {
	root.Execute()
}
