package main

import "github.com/ellin72/Elquote/internal/app"

func main() {
	app.Run()
}
