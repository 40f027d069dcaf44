// SPDX-License-Identifier: MIT

package dfs

import (
	"strconv"
	"strings"
)

// JoinSig returns a comma-separated signature of ids, used to deduplicate
// and order cycles. Callers pass ids in canonical (sorted) order.
func JoinSig(ids []int) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}
