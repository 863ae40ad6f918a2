package state

import (
	"sync"

	"github.com/joeyave/airia-site/helpers"
	"github.com/joeyave/airia-site/util"
)

// Playback is the audio element behind the preview player.
type Playback interface {
	Load(src string)
	Play() error
	Pause()
}

type Track struct {
	Title      string
	CoverArt   string
	PreviewURL string
}

// Player is the single preview player of the music page. Playing a track
// replaces whatever was playing before.
type Player struct {
	mu       sync.Mutex
	clock    util.Clock
	playback Playback

	state     int
	track     *Track
	hideTimer util.Timer
}

func NewPlayer(playback Playback, clock util.Clock) *Player {
	if clock == nil {
		clock = util.SystemClock{}
	}
	return &Player{
		clock:    clock,
		playback: playback,
		state:    PlayerHidden,
	}
}

func (p *Player) Play(track Track) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelHide()
	if p.state == PlayerPlaying {
		p.playback.Pause()
	}

	p.track = &track
	p.playback.Load(track.PreviewURL)
	if err := p.playback.Play(); err != nil {
		p.state = PlayerPaused
		return err
	}
	p.state = PlayerPlaying
	return nil
}

// Close pauses and hides the player.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancelHide()
	if p.state == PlayerHidden {
		return
	}
	p.playback.Pause()
	p.state = PlayerHidden
}

// Ended hides the player shortly after the preview finished.
func (p *Player) Ended() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.state != PlayerPlaying {
		return
	}
	p.state = PlayerEnded
	p.cancelHide()
	p.hideTimer = p.clock.AfterFunc(helpers.PlayerHideDelay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.state == PlayerEnded {
			p.state = PlayerHidden
		}
		p.hideTimer = nil
	})
}

func (p *Player) cancelHide() {
	if p.hideTimer != nil {
		p.hideTimer.Stop()
		p.hideTimer = nil
	}
}

func (p *Player) State() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Visible reports whether the player bar is shown.
func (p *Player) Visible() bool {
	return p.State() != PlayerHidden
}

func (p *Player) Track() (Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.track == nil {
		return Track{}, false
	}
	return *p.track, true
}
