package tui

import (
	"github.com/vovakirdan/tui-naval/internal/render"
	"github.com/vovakirdan/tui-naval/internal/scenario"
	"github.com/vovakirdan/tui-naval/internal/storage"
)

// FrameRecords converts the frames of run into plain-text history records.
func FrameRecords(run *scenario.Run) []storage.FrameRecord {
	records := make([]storage.FrameRecord, len(run.Frames))
	for i, f := range run.Frames {
		records[i] = storage.FrameRecord{
			Step:  f.Step,
			Title: f.Title,
			Hits:  f.Hits,
			Board: render.Board(f.Result, render.Options{}),
		}
	}
	return records
}

// SaveRun records run in store and returns its run ID.
func SaveRun(store *storage.Store, run *scenario.Run) (string, error) {
	return store.SaveRun(run.Name, run.ShipsPlaced(), FrameRecords(run))
}
