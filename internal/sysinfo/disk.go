// Package sysinfo reports volume statistics for scanned paths.
package sysinfo

import (
	"github.com/shirou/gopsutil/v4/disk"
)

// DiskSpace describes the volume a path lives on.
type DiskSpace struct {
	Path        string
	Total       uint64
	Free        uint64
	UsedPercent float64
}

// Space returns usage for the volume containing path.
func Space(path string) (*DiskSpace, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return nil, err
	}
	return &DiskSpace{
		Path:        usage.Path,
		Total:       usage.Total,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}, nil
}
