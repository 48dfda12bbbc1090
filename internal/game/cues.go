package game

// PlayCues turns one tick's events into sound. Nitro keeps restarting on its
// channel while boost is held and is cut as soon as it is released.
func PlayCues(a Audio, ev FrameEvents, snd Sounds) {
	for i := 0; i < ev.Crashes; i++ {
		if snd.Crash != nil {
			a.PlayOnce(snd.Crash)
		}
	}

	if ev.NitroEngaged {
		if snd.Nitro != nil && !a.IsBusy(ChannelNitro) {
			a.PlayLooping(ChannelNitro, snd.Nitro)
		}
		return
	}
	a.Stop(ChannelNitro)
}
