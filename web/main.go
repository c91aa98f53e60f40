package main

import (
	"flag"
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/loaders"
	"github.com/df07/go-recursive-raytracer/pkg/logging"
	"github.com/df07/go-recursive-raytracer/web/server"
)

func main() {
	// Parse command line flags
	port := flag.Int("port", 8080, "Port to serve on")
	scenesDir := flag.String("scenes", loaders.DefaultScenesDir, "Directory containing TOML scene files")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	if err := logging.SetLevel(*logLevel); err != nil {
		logging.Fatal("Invalid log level", "err", err)
	}

	webServer := server.NewServer(*port, *scenesDir)

	logging.Info("Recursive Raytracer Web Server")
	logging.Info(fmt.Sprintf("Visit http://localhost:%d/api/scenes to list scenes", *port))

	if err := webServer.Start(); err != nil {
		logging.Fatal("Error starting server", "err", err)
	}
}
