package reader

import (
	"github.com/geoh5kit/geoh5kit/internal/concat"
	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/internal/format"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// loadConcatenator decodes the shared channel arrays and object index
// written by writer.SaveConcatenator, rebuilding c's in-memory Index
// from the parallel start/length datasets.
func loadConcatenator(groupGroup container.Group, parentUID types.UID) *concat.Concatenator {
	cg, err := groupGroup.SubGroup(format.ConcatGroupName, false)
	if err != nil {
		return nil
	}
	c := concat.NewConcatenator(parentUID)

	idsDS, err := cg.Dataset(format.DatasetObjectIDs)
	if err != nil {
		return c
	}
	idStrings, ok := idsDS.Values.([]string)
	if !ok {
		return c
	}
	uids := make([]types.UID, 0, len(idStrings))
	for _, s := range idStrings {
		uid, err := types.ParseUID(s)
		if err != nil {
			continue
		}
		uids = append(uids, uid)
		c.ObjectIDs = append(c.ObjectIDs, uid)
		c.ConcatenatedAttributes[uid] = map[string]any{}
	}

	names, err := cg.DatasetNames()
	if err != nil {
		return c
	}
	for _, name := range names {
		if name == format.DatasetObjectIDs {
			continue
		}
		if hasSuffix(name, format.ChannelStartSuffix) || hasSuffix(name, format.ChannelLengthSuffix) {
			continue
		}
		ds, err := cg.Dataset(name)
		if err != nil {
			continue
		}
		values, ok := ds.Values.([]float64)
		if !ok {
			continue
		}
		c.Channels[name] = values

		startsDS, errS := cg.Dataset(name + format.ChannelStartSuffix)
		lengthsDS, errL := cg.Dataset(name + format.ChannelLengthSuffix)
		if errS != nil || errL != nil {
			continue
		}
		starts, ok1 := startsDS.Values.([]int32)
		lengths, ok2 := lengthsDS.Values.([]int32)
		if !ok1 || !ok2 {
			continue
		}
		for i, uid := range uids {
			if i >= len(starts) || i >= len(lengths) {
				break
			}
			if lengths[i] < 0 {
				continue
			}
			c.Index.Set(uid, name, int(starts[i]), int(lengths[i]))
		}
	}
	return c
}

func hasSuffix(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}
