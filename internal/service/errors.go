package service

import "errors"

var errEmptyFolderName = errors.New("folder name is empty")
