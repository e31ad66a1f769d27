// Copyright 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package utils

import "strings"

// ReplaceWithMap replaces every placeholder key of values inside s in a single pass,
// so substituted values are never expanded again.
func ReplaceWithMap(s string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, k, v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
