package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-phong-views/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", "scenes", "Directory of JSON scene configs")
	flag.Parse()

	// Create and start web server
	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("Phong View Renderer Web Server")
	log.Printf("Render with http://localhost:%d/api/render?scene=two-spheres", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
