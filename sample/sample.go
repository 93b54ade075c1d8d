package sample

import (
	"gitlab.com/gomidi/midi/v2/smf"
)

func isNoteMessage(m smf.Message) bool {
	var ch, key, vel uint8
	return m.GetNoteOn(&ch, &key, &vel) || m.GetNoteOff(&ch, &key, &vel)
}

func isEndOfTrack(m smf.Message) bool {
	return len(m) >= 2 && m[0] == 0xFF && m[1] == 0x2F
}

// Create copies the part of mf that starts at ticksOffset. Note messages
// before the offset are dropped, other messages are kept at the start so
// names and tempo survive. maxNotes limits note messages per track; 0 means
// no limit.
func Create(mf *smf.SMF, ticksOffset uint64, maxNotes int) *smf.SMF {
	var res smf.SMF
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, lastKept uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			if isEndOfTrack(evt.Message) {
				continue
			}

			var at uint64
			switch {
			case absTicks >= ticksOffset:
				at = absTicks - ticksOffset
			case isNoteMessage(evt.Message):
				continue
			}

			if isNoteMessage(evt.Message) {
				if maxNotes > 0 && numNoteOnOff >= maxNotes {
					break TrackEventLoop
				}
				numNoteOnOff++
			}
			newTrack = append(newTrack, smf.Event{Delta: uint32(at - lastKept), Message: evt.Message})
			lastKept = at
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return &res
}
