package ui

import (
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
)

// ProgressTracker is a single progress bar
type ProgressTracker interface {
	Increment(count int64)
	UpdateMessage(message string)
	MarkAsDone()
}

type progressTrackerImpl struct {
	tracker *progress.Tracker
}

func (p *progressTrackerImpl) Increment(count int64) {
	if p.tracker != nil {
		p.tracker.Increment(count)
	}
}

func (p *progressTrackerImpl) UpdateMessage(message string) {
	if p.tracker != nil {
		p.tracker.UpdateMessage(message)
	}
}

func (p *progressTrackerImpl) MarkAsDone() {
	if p.tracker != nil {
		p.tracker.MarkAsDone()
	}
}

var progressWriter progress.Writer

// StartProgressWriter starts rendering trackers on stderr. Without a running
// writer, trackers are still returned but never drawn.
func StartProgressWriter() {
	pw := progress.NewWriter()

	pw.SetAutoStop(false)
	pw.SetTrackerLength(25)
	pw.SetMessageLength(32)
	pw.SetStyle(progress.StyleDefault)
	pw.SetOutputWriter(os.Stderr)
	pw.SetTrackerPosition(progress.PositionRight)
	pw.SetUpdateFrequency(time.Millisecond * 100)
	pw.Style().Colors = progress.StyleColorsExample
	pw.Style().Options.PercentFormat = "%4.1f%%"
	pw.Style().Visibility.Value = true

	progressWriter = pw
	go progressWriter.Render()
}

// StopProgressWriter stops the writer and waits for the last frame
func StopProgressWriter() {
	if progressWriter == nil {
		return
	}

	progressWriter.Stop()
	for progressWriter.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}

	progressWriter = nil
}

func TrackProgress(message string, total int) ProgressTracker {
	tracker := progress.Tracker{Message: message, Total: int64(total),
		Units: progress.UnitsDefault}

	if progressWriter != nil {
		progressWriter.AppendTracker(&tracker)
	}

	return &progressTrackerImpl{tracker: &tracker}
}
