package lookup

// IntentKind says what a completed lookup should update.
type IntentKind int

const (
	// IntentDisplay makes the fetched record the current on-screen record.
	IntentDisplay IntentKind = iota

	// IntentBookmarkUpdate replaces the bookmark whose IP equals the
	// intent's OriginalIP with the fetched record.
	IntentBookmarkUpdate
)

func (k IntentKind) String() string {
	switch k {
	case IntentDisplay:
		return "display"
	case IntentBookmarkUpdate:
		return "bookmark-update"
	default:
		return "unknown"
	}
}

// Intent tags a dispatched task. It is created per task, delivered back with
// the task's terminal event, and never persisted.
type Intent struct {
	Kind       IntentKind
	OriginalIP string
}

func DisplayIntent() Intent {
	return Intent{Kind: IntentDisplay}
}

func BookmarkUpdateIntent(originalIP string) Intent {
	return Intent{Kind: IntentBookmarkUpdate, OriginalIP: originalIP}
}
