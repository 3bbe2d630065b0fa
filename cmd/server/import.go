package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/brightpath-labs/brightpath/internal/api"
)

func seedApplications() []*api.Application {
	return api.SeedApplications()
}

// importLegacySnapshot loads a JSON export of the application collection from
// BRIGHTPATH_IMPORT_PATH, for one-time migration from the browser-storage
// deployment. Returns nil when no import is requested or the file is
// unusable; the running database is then left as-is.
func importLegacySnapshot() []*api.Application {
	path := os.Getenv("BRIGHTPATH_IMPORT_PATH")
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("import: read %s: %v", path, err)
		return nil
	}
	var apps []*api.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		log.Printf("import: parse %s: %v", path, err)
		return nil
	}
	log.Printf("import: loaded %d applications from %s", len(apps), path)
	return apps
}
