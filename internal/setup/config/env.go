package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// LoadEnvFile loads variables from the given file when it exists. Deployed
// environments set everything through the process environment instead.
func LoadEnvFile(path string) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	if err := godotenv.Load(path); err != nil {
		log.Warnf("error loading env file %s: %v", path, err)
	}
}
