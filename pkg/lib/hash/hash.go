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

package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/traincfg/traincfg/pkg/lib/files"
)

func Bytes(bytes []byte) string {
	hash := sha256.New()
	hash.Write(bytes)
	return hex.EncodeToString(hash.Sum(nil))
}

func String(str string) string {
	return Bytes([]byte(str))
}

func Strings(strs ...string) string {
	return String(strings.Join(strs, ","))
}

func File(path string) (string, error) {
	fileBytes, err := files.ReadFileBytes(path)
	if err != nil {
		return "", err
	}
	return Bytes(fileBytes), nil
}
