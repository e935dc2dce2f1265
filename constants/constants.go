package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// SnapshotFile is the gob snapshot the watch command keeps current.
const SnapshotFile = "document.dat"

const DefaultTempo = 120
