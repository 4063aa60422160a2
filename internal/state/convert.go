package state

import "github.com/wavecast/dial/internal/radio"

// FromNowResponse maps a full /api/now payload onto the canonical snapshot
// shape. The server omits the "now" object when nothing is playing yet; the
// fragment then stays at its zero value.
func FromNowResponse(resp *radio.NowResponse) Snapshot {
	snap := Snapshot{Library: resp.Library, Uptime: resp.Uptime}
	if resp.Now != nil {
		snap.Now = *resp.Now
	}
	return snap
}
