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

package trainconfig

type Dataset int

const (
	UnknownDataset Dataset = iota
	MNISTDataset
	LFWDataset
	IMDBWikiDataset
)

var _datasets = []string{
	"unknown",
	"mnist",
	"lfw",
	"imdb_wiki",
}

// MNIST labels the digits 0-9.
const _numMNISTClasses = 10

func DatasetFromString(s string) Dataset {
	for i := 0; i < len(_datasets); i++ {
		if s == _datasets[i] {
			return Dataset(i)
		}
	}
	return UnknownDataset
}

func DatasetStrings() []string {
	return _datasets[1:]
}

func (t Dataset) String() string {
	return _datasets[t]
}

// NumClasses returns the number of class labels for the dataset, or 0 if
// the label space is not fixed.
func (t Dataset) NumClasses() int {
	if t == MNISTDataset {
		return _numMNISTClasses
	}
	return 0
}

// MarshalText satisfies TextMarshaler
func (t Dataset) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *Dataset) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(_datasets); i++ {
		if enum == _datasets[i] {
			*t = Dataset(i)
			return nil
		}
	}

	*t = UnknownDataset
	return nil
}
