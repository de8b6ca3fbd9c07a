package main

import "github.com/LyuPeng-star/lyupeng-star.github.io/cmd"

func main() {
	cmd.Execute()
}
