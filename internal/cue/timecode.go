package cue

import (
	"fmt"
	"regexp"
	"strconv"
)

// Cue time codes address audio as mm:ss:ff where a frame is 1/75th of a
// second. Sample positions assume the CD sampling rate of 44100 Hz.
const (
	SampleRate      = 44100
	FramesPerSecond = 75
	SamplesPerFrame = SampleRate / FramesPerSecond
)

var timecodePattern = regexp.MustCompile(`^(\d+):(\d\d):(\d\d)`)

// TimecodeToSamples converts an mm:ss:ff time code into a sample offset.
func TimecodeToSamples(timecode string) (int64, error) {
	match := timecodePattern.FindStringSubmatch(timecode)
	if match == nil {
		return 0, fmt.Errorf("%q is not a valid mm:ss:ff time code", timecode)
	}
	minutes, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid mm:ss:ff time code", timecode)
	}
	seconds, _ := strconv.ParseInt(match[2], 10, 64)
	frames, _ := strconv.ParseInt(match[3], 10, 64)

	return (minutes*60+seconds)*SampleRate + frames*SamplesPerFrame, nil
}
