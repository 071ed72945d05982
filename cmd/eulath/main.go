package main

// version is overridable at link time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	Execute(version)
}
