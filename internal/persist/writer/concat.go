package writer

import (
	"github.com/geoh5kit/geoh5kit/internal/concat"
	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/internal/format"
)

// SaveConcatenator flushes c's shared channel arrays and object index
// under groupGroup (the DrillholeGroup-kind entity's own container
// group), per spec §4.7's "saves mark the group dirty so its index is
// rewritten on close".
func SaveConcatenator(groupGroup container.Group, c *concat.Concatenator) error {
	if c == nil {
		return nil
	}
	cg, err := groupGroup.SubGroup(format.ConcatGroupName, true)
	if err != nil {
		return err
	}

	ids := make([]string, len(c.ObjectIDs))
	for i, uid := range c.ObjectIDs {
		ids[i] = uid.String()
	}
	if err := cg.WriteDataset(format.DatasetObjectIDs, container.Dataset{Values: ids, Dims: []int{len(ids)}}); err != nil {
		return err
	}

	for channel, values := range c.Channels {
		if err := cg.WriteDataset(channel, container.Dataset{Values: values, Dims: []int{len(values)}}); err != nil {
			return err
		}
		starts := make([]int32, len(c.ObjectIDs))
		lengths := make([]int32, len(c.ObjectIDs))
		for i, uid := range c.ObjectIDs {
			if entry, ok := c.Index.Get(uid, channel); ok && !entry.Tombstoned {
				starts[i] = int32(entry.Start)
				lengths[i] = int32(entry.Length)
			} else {
				lengths[i] = -1 // no window for this object on this channel
			}
		}
		if err := cg.WriteDataset(channel+format.ChannelStartSuffix, container.Dataset{Values: starts, Dims: []int{len(starts)}}); err != nil {
			return err
		}
		if err := cg.WriteDataset(channel+format.ChannelLengthSuffix, container.Dataset{Values: lengths, Dims: []int{len(lengths)}}); err != nil {
			return err
		}
	}
	c.ClearDirty()
	return nil
}
