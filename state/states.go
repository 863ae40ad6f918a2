package state

// Modal states.
const (
	ModalClosed = iota
	ModalOpen
)

// Player states.
const (
	PlayerHidden = iota
	PlayerPlaying
	PlayerPaused
	PlayerEnded
)

// Menu states.
const (
	MenuClosed = iota
	MenuOpen
)
