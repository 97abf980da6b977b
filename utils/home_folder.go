package utils

import (
	"flag"
	"os"
	"path"

	"github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
)

const DefaultHomeFolder = "~/.gosampling"

var homeFolder = DefaultHomeFolder

func init() {
	flag.StringVar(&homeFolder, "home-folder", homeFolder, "specify home folder")
}

// SetHomeFolder overrides the folder used for configuration and logs.
func SetHomeFolder(folder string) {
	homeFolder = folder
}

func GetHomeFolder() (string, error) {
	appHomeFolder, err := homedir.Expand(homeFolder)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(appHomeFolder, 0700); err != nil {
		return "", err
	}
	return appHomeFolder, nil
}

func GetSubFolder(folderPath string) string {
	appHomeFolder, err := GetHomeFolder()
	if err != nil {
		log.WithError(err).Fatal("Could not resolve home folder")
		return ""
	}
	targetPath := path.Join(appHomeFolder, folderPath)
	if err := os.MkdirAll(targetPath, 0700); err != nil {
		log.WithError(err).Fatal("Could not create", targetPath)
	}
	return targetPath
}
