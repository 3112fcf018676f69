/*
Copyright 2022 TrainCfg Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package files

import (
	"os"
	"strings"

	"github.com/traincfg/traincfg/pkg/lib/errors"
)

func IsFile(path string) bool {
	if path == "" {
		return false
	}
	if fileInfo, err := os.Stat(path); err == nil {
		return !fileInfo.IsDir()
	}
	return false
}

func IsDir(path string) bool {
	if path == "" {
		return false
	}
	if fileInfo, err := os.Stat(path); err == nil {
		return fileInfo.IsDir()
	}
	return false
}

func ReadFileBytes(path string) ([]byte, error) {
	if err := CheckFile(path); err != nil {
		return nil, err
	}
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ErrorReadFile(path), err.Error())
	}
	return fileBytes, nil
}

func ReadFile(path string) (string, error) {
	fileBytes, err := ReadFileBytes(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(fileBytes)), nil
}

func CheckFile(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return ErrorFileDoesNotExist(path)
	}
	if fileInfo.IsDir() {
		return ErrorNotAFile(path)
	}
	return nil
}

func CreateDir(path string) error {
	if path == "" {
		return nil
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return errors.Wrap(ErrorCreateDir(path), err.Error())
	}
	return nil
}

func WriteFile(data []byte, path string) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(ErrorCreateFile(path), err.Error())
	}
	return nil
}
