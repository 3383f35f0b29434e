package job

import (
	"cmp"
	"slices"
)

func sortInfos(infos []Info) {
	slices.SortFunc(infos, func(a, b Info) int { return cmp.Compare(a.Seq, b.Seq) })
}
