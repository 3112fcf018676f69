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

package slices

func HasString(list []string, query string) bool {
	for _, elem := range list {
		if elem == query {
			return true
		}
	}
	return false
}

func CopyStrings(vals []string) []string {
	copied := make([]string, len(vals))
	copy(copied, vals)
	return copied
}

func UniqueStrings(strs []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, str := range strs {
		if !seen[str] {
			out = append(out, str)
			seen[str] = true
		}
	}
	return out
}

func SubtractStrSlice(slice1 []string, slice2 []string) []string {
	var result []string
	for _, elem := range slice1 {
		if !HasString(slice2, elem) {
			result = append(result, elem)
		}
	}
	return result
}
