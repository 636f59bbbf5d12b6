package services

import (
	"errors"
	"fmt"
)

var ErrClearDataFailed = errors.New("clear data failed")

type DataService struct {
	snapshots SnapshotStore
}

func NewDataService(snapshots SnapshotStore) *DataService {
	return &DataService{snapshots: snapshots}
}

// ClearAllData removes every record and restores default settings.
func (service *DataService) ClearAllData() error {
	if err := service.snapshots.Clear(); err != nil {
		return fmt.Errorf("%w: %v", ErrClearDataFailed, err)
	}
	return nil
}
