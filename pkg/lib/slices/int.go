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

import "strconv"

func HasInt(list []int, query int) bool {
	for _, elem := range list {
		if elem == query {
			return true
		}
	}
	return false
}

func CopyInts(vals []int) []int {
	copied := make([]int, len(vals))
	copy(copied, vals)
	return copied
}

func FindDuplicateInts(in []int) []int {
	seen := map[int]bool{}
	var dups []int
	for _, elem := range in {
		if seen[elem] && !HasInt(dups, elem) {
			dups = append(dups, elem)
		}
		seen[elem] = true
	}
	return dups
}

func IntToString(vals []int) []string {
	strs := make([]string, len(vals))
	for i, val := range vals {
		strs[i] = strconv.Itoa(val)
	}
	return strs
}
