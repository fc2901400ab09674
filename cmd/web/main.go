package main

import "projectconnect/internal/app"

func main() {
	app.Run()
}
