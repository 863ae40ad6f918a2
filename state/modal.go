package state

// ScrollLocker suspends page scrolling behind an open modal.
type ScrollLocker interface {
	LockScroll()
	UnlockScroll()
}

// BodyScroll is the ScrollLocker of a rendered page: it holds the overflow
// style of the document body.
type BodyScroll struct {
	overflow string
}

func (b *BodyScroll) LockScroll()      { b.overflow = "hidden" }
func (b *BodyScroll) UnlockScroll()    { b.overflow = "" }
func (b *BodyScroll) Overflow() string { return b.overflow }

type Modal struct {
	state  int
	openID string
	body   ScrollLocker
}

func NewModal(body ScrollLocker) *Modal {
	if body == nil {
		body = &BodyScroll{}
	}
	return &Modal{
		state: ModalClosed,
		body:  body,
	}
}

func (m *Modal) Open(ID string) {
	if m.state == ModalOpen && m.openID == ID {
		return
	}
	m.openID = ID
	if m.state == ModalClosed {
		m.body.LockScroll()
	}
	m.state = ModalOpen
}

func (m *Modal) Close() {
	if m.state == ModalClosed {
		return
	}
	m.state = ModalClosed
	m.openID = ""
	m.body.UnlockScroll()
}

func (m *Modal) IsOpen() bool {
	return m.state == ModalOpen
}

// OpenID is the id of the displayed record, "" while closed.
func (m *Modal) OpenID() string {
	return m.openID
}

// HandleKey closes the modal on Escape and reports whether it did.
func (m *Modal) HandleKey(key string) bool {
	if key != "Escape" || m.state != ModalOpen {
		return false
	}
	m.Close()
	return true
}

func (m *Modal) BodyOverflow() string {
	if b, ok := m.body.(*BodyScroll); ok {
		return b.Overflow()
	}
	if m.IsOpen() {
		return "hidden"
	}
	return ""
}

// OpenByID opens the modal on the record whose id is ID. An unknown id leaves
// the modal as it was.
func OpenByID[T any](m *Modal, records []T, ID string, idOf func(T) string) (T, bool) {
	for _, record := range records {
		if idOf(record) == ID {
			m.Open(ID)
			return record, true
		}
	}

	var zero T
	return zero, false
}
