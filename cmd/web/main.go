package main

import "frontdoor_backend/internal/app"

func main() {
	app.Run()
}
